package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_ReadsLineAndTrims(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  alice@x.com  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter email", &out)
	require.NoError(t, err)

	assert.Equal(t, "alice@x.com", got)
	assert.Contains(t, out.String(), "Enter email")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("no-newline"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter name", &out)
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}

func TestGetSimpleText_EmptyInputIsEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(reader, "Enter name", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesSeamAndPrintsPrompt(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2!"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword("Enter password", &out)
	require.NoError(t, err)

	assert.Equal(t, []byte("hunter2!"), pw)
	assert.Contains(t, out.String(), "Enter password: ")
}
