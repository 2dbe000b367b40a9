package dto

import (
	"time"

	"pgms/shared/constant"
	"pgms/shared/model"
	"pgms/shared/timezone"
)

type Timestamps struct {
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func (m *Timestamps) FromModel(model model.Timestamps) {
	m.CreatedAt = formatOptional(model.CreatedAt)
	m.UpdatedAt = formatOptional(model.UpdatedAt)
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}

	return timezone.Format(*t, constant.DateFormat)
}
