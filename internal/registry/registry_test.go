package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mfulz/rlaunch/internal/configloader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeRegistry(t, "regpaths.json", `
{
	// filled in by the installer
	"R": "/opt/r/bin",
	"python.3": "/usr/local/python3" /* dotted names are literal */
}`)

	reg, err := Load(path)
	require.NoError(t, err)

	p, ok := reg.Lookup("r")
	assert.True(t, ok)
	assert.Equal(t, "/opt/r/bin", p)

	p, ok = reg.Lookup("Python.3")
	assert.True(t, ok)
	assert.Equal(t, "/usr/local/python3", p)

	assert.Equal(t, []string{"python.3", "r"}, reg.Names())
}

func TestLoadYAML(t *testing.T) {
	path := writeRegistry(t, "regpaths.yaml", "r: /opt/r\npython: /usr/bin\n")

	reg, err := Load(path)
	require.NoError(t, err)

	p, ok := reg.Lookup("python")
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin", p)
}

func TestLookupMissingIsNotAnError(t *testing.T) {
	reg := New(map[string]string{"r": "/opt/r"})

	p, ok := reg.Lookup("julia")
	assert.False(t, ok)
	assert.Empty(t, p)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "regpaths.json"))

	var missing *configloader.MissingError
	assert.True(t, errors.As(err, &missing))
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(writeRegistry(t, "regpaths.json", "  \n"))

	var missing *configloader.MissingError
	assert.True(t, errors.As(err, &missing))
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		key     string
	}{
		{name: "broken json", file: "regpaths.json", content: `{"r": "/opt/r"`},
		{name: "non string value", file: "regpaths.json", content: `{"r": 42}`, key: "r"},
		{name: "nested value", file: "regpaths.json", content: `{"r": {"bin": "/opt/r"}}`, key: "r"},
		{name: "broken yaml", file: "regpaths.yml", content: "r: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeRegistry(t, tt.file, tt.content))

			var pe *configloader.ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, tt.key, pe.Key)
		})
	}
}
