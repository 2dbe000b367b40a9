package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings stored as a JSON array. It always
// encodes as an array, never as null.
type StringList []string

// Scan decodes NULL and empty text as the empty list.
func (l *StringList) Scan(src any) error {
	var raw string

	switch v := src.(type) {
	case nil:
		*l = StringList{}

		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*l = StringList{}

		return nil
	}

	items := []string{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return fmt.Errorf("invalid string list %q: %w", raw, err)
	}

	*l = items

	return nil
}

func (l StringList) Value() (driver.Value, error) {
	payload, err := json.Marshal(l.Items())
	if err != nil {
		return nil, fmt.Errorf("failed to encode string list: %w", err)
	}

	return string(payload), nil
}

// Items returns the list as a non-nil slice.
func (l StringList) Items() []string {
	if l == nil {
		return []string{}
	}

	return l
}
