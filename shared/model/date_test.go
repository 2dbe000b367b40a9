package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgms/shared/model"
)

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{name: "time", src: time.Date(2026, time.March, 1, 23, 30, 0, 0, time.FixedZone("IST", 19800)), want: "2026-03-01"},
		{name: "text", src: "2026-03-01", want: "2026-03-01"},
		{name: "timestamp text", src: []byte("2026-03-01 00:00:00+00:00"), want: "2026-03-01"},
		{name: "short", src: "2026-3-1", wantErr: true},
		{name: "unsupported", src: int64(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d model.Date

			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_ValueAndJSON(t *testing.T) {
	d := model.NewDate(2026, time.October, 16)

	value, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", value)

	payload, err := json.Marshal(struct {
		Day model.Date `json:"day"`
	}{Day: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2026-10-16"}`, string(payload))

	var decoded model.Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-10-16"`), &decoded))
	assert.True(t, d.Equal(decoded.Time))

	assert.Error(t, json.Unmarshal([]byte(`"16/10/2026"`), &decoded))
}
