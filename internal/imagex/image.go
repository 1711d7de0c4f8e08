// Package imagex classifies and normalizes the image references the app
// passes around: remote URLs, local file URIs, and inline base64 data URIs.
package imagex

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

const dataURIPrefix = "data:image/"

// IsValidImageURI reports whether uri is one of the reference shapes the
// app accepts: an http(s) URL, an inline image data URI, or a local file
// URI. Anything else (including empty input) is rejected.
func IsValidImageURI(uri string) bool {
	if uri == "" {
		return false
	}

	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return true
	}
	if strings.HasPrefix(uri, dataURIPrefix) {
		return true
	}
	if strings.HasPrefix(uri, "file://") {
		return true
	}

	return false
}

// ToDataURI converts a local image into an inline base64 data URI so it can
// be embedded in a payload. Inputs that are already data URIs pass through
// unchanged. The path may carry a file:// prefix.
func ToDataURI(path string) (string, error) {
	if strings.HasPrefix(path, "data:") {
		return path, nil
	}

	raw, err := os.ReadFile(strings.TrimPrefix(path, "file://"))
	if err != nil {
		return "", fmt.Errorf("read image %s: %w", path, err)
	}

	return dataURIPrefix + "jpeg;base64," + base64.StdEncoding.EncodeToString(raw), nil
}
