package s3

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"pgms/config"
	"pgms/infras/otel/mocks"
)

func TestObjectKeyFromURL(t *testing.T) {
	svc := &s3Impl{
		bucket:       "pgms",
		publicDomain: "https://cdn.example.com",
		apiEndpoint:  "https://s3.example.com",
	}

	assert.Equal(t, "admins/7/photo.png", svc.ObjectKeyFromURL("https://cdn.example.com/admins/7/photo.png"))
	assert.Equal(t, "admins/7/photo.png", svc.ObjectKeyFromURL("https://s3.example.com/pgms/admins/7/photo.png"))
	assert.Empty(t, svc.ObjectKeyFromURL("https://elsewhere.example.com/photo.png"))
	assert.Empty(t, svc.ObjectKeyFromURL("https://cdn.example.com/"))
}

func TestNew_Disabled(t *testing.T) {
	svc := New(&config.Config{}, mocks.NewOtel())

	_, err := svc.UploadFileBytes(context.Background(), "admins/1", "a.png", "image/png", []byte{1})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, svc.ObjectKeyFromURL("https://cdn.example.com/a.png"))
}
