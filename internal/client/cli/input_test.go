package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  ABC-123 \n"), "Scan ticket", &out)
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", got)
	assert.Equal(t, "Scan ticket\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Scan ticket", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Scan ticket", &out)
	assert.Error(t, err)
}

func TestGetSecret(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("tok-1\n"), nil }
	var out bytes.Buffer
	got, err := GetSecret("Device token", &out)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)
	assert.Equal(t, "Device token: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetSecret("Device token", &out)
	assert.Error(t, err)
}
