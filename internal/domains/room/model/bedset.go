package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// BedSet is the set of occupied bed numbers, stored as a JSON array of integers.
type BedSet []int

// NewBedSet never returns nil, so an empty set encodes as [] rather than null.
func NewBedSet(beds ...int) BedSet {
	set := append(make(BedSet, 0, len(beds)), beds...)
	set.normalize()

	return set
}

func (b *BedSet) normalize() {
	slices.Sort(*b)
	*b = slices.Compact(*b)
}

func (b BedSet) Contains(bed int) bool {
	_, found := slices.BinarySearch(b, bed)

	return found
}

// Highest returns the largest occupied bed number, or 0 for an empty set.
func (b BedSet) Highest() int {
	if len(b) == 0 {
		return 0
	}

	return slices.Max(b)
}

// Add returns a set that also contains bed.
func (b BedSet) Add(bed int) BedSet {
	return NewBedSet(append(slices.Clone(b), bed)...)
}

// Remove returns a set without bed.
func (b BedSet) Remove(bed int) BedSet {
	return slices.DeleteFunc(slices.Clone(b), func(n int) bool { return n == bed })
}

// Scan decodes NULL and empty text as the empty set.
func (b *BedSet) Scan(src any) error {
	var raw string

	switch v := src.(type) {
	case nil:
		*b = BedSet{}

		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into BedSet", src)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*b = BedSet{}

		return nil
	}

	var beds []int
	if err := json.Unmarshal([]byte(raw), &beds); err != nil {
		return fmt.Errorf("invalid occupied bed numbers %q: %w", raw, err)
	}

	*b = NewBedSet(beds...)

	return nil
}

func (b BedSet) Value() (driver.Value, error) {
	set := NewBedSet(b...)

	payload, err := json.Marshal([]int(set))
	if err != nil {
		return nil, fmt.Errorf("failed to encode occupied bed numbers: %w", err)
	}

	return string(payload), nil
}
