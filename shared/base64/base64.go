package base64

import (
	stdbase64 "encoding/base64"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

// DataURL is a parsed RFC 2397 data URL carrying a base64 payload.
type DataURL struct {
	MediaType string
	Params    []string
	Payload   string
}

// Parse splits a base64 data URL. ok is false when value is not one.
func Parse(value string) (DataURL, bool) {
	if !strings.HasPrefix(value, dataPrefix) {
		return DataURL{}, false
	}

	header, payload, found := strings.Cut(value[len(dataPrefix):], base64Marker)
	if !found {
		return DataURL{}, false
	}

	parts := strings.Split(header, ";")

	mediaType := strings.ToLower(strings.TrimSpace(parts[0]))
	if mediaType == "" {
		return DataURL{}, false
	}

	return DataURL{MediaType: mediaType, Params: parts[1:], Payload: payload}, true
}

// GetContentType returns the media type of a base64 data URL without its
// parameters, or "" when file is not a data URL.
func GetContentType(file string) string {
	dataURL, ok := Parse(file)
	if !ok {
		return ""
	}

	return dataURL.MediaType
}

// DecodedSize returns the byte length of the payload once decoded. It does
// not validate the payload alphabet.
func DecodedSize(file string) (int, bool) {
	dataURL, ok := Parse(file)
	if !ok {
		return 0, false
	}

	payload := strings.TrimRight(dataURL.Payload, "=")

	return stdbase64.RawStdEncoding.DecodedLen(len(payload)), true
}
