package domain

import (
	"encoding/base64"
	"strings"
)

// DecodeDataURI returns the binary payload of a base64 data URI. A bare
// base64 string without a header is accepted too.
func DecodeDataURI(dataURI string) ([]byte, error) {
	payload := strings.TrimSpace(dataURI)
	if i := strings.IndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}
	if payload == "" {
		return nil, NewValidationError("image", "Image data is empty")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, NewValidationError("image", "Image data is not valid base64")
	}
	return data, nil
}
