package imagex

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidImageURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want bool
	}{
		{"http url", "http://cdn.example.com/a.jpg", true},
		{"https url", "https://cdn.example.com/a.jpg", true},
		{"data uri", "data:image/png;base64,iVBORw0KGgo=", true},
		{"file uri", "file:///tmp/avatar.jpg", true},

		{"empty", "", false},
		{"bare path", "/tmp/avatar.jpg", false},
		{"non-image data uri", "data:text/plain;base64,aGk=", false},
		{"ftp", "ftp://example.com/a.jpg", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidImageURI(tt.uri))
		})
	}
}

func TestToDataURI_EncodesFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.jpg")
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	uri, err := ToDataURI(path)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestToDataURI_FileURIPrefixIsStripped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.jpg")
	require.NoError(t, os.WriteFile(path, []byte{0x01}, 0o600))

	uri, err := ToDataURI("file://" + path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
}

func TestToDataURI_DataURIPassesThrough(t *testing.T) {
	in := "data:image/png;base64,iVBORw0KGgo="

	uri, err := ToDataURI(in)
	require.NoError(t, err)
	assert.Equal(t, in, uri)
}

func TestToDataURI_MissingFile(t *testing.T) {
	_, err := ToDataURI(filepath.Join(t.TempDir(), "absent.jpg"))
	require.Error(t, err)
}
