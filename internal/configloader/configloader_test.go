package configloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(base, "abs.cfg")

	t.Run("default anchored at base", func(t *testing.T) {
		t.Setenv("RLAUNCH_TEST_CFG", "")
		got := ResolvePath("", "RLAUNCH_TEST_CFG", filepath.Join("utils", "config.cfg"), base)
		assert.Equal(t, filepath.Join(base, "utils", "config.cfg"), got)
	})

	t.Run("env overrides default", func(t *testing.T) {
		t.Setenv("RLAUNCH_TEST_CFG", abs)
		got := ResolvePath("", "RLAUNCH_TEST_CFG", "config.cfg", base)
		assert.Equal(t, abs, got)
	})

	t.Run("explicit overrides env", func(t *testing.T) {
		t.Setenv("RLAUNCH_TEST_CFG", abs)
		got := ResolvePath("other.cfg", "RLAUNCH_TEST_CFG", "config.cfg", base)
		assert.Equal(t, filepath.Join(base, "other.cfg"), got)
	})

	t.Run("no env key", func(t *testing.T) {
		got := ResolvePath("", "", abs, base)
		assert.Equal(t, abs, got)
	})
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()

	t.Run("absent", func(t *testing.T) {
		_, err := ReadSource(filepath.Join(dir, "nope.cfg"))
		var missing *MissingError
		require.True(t, errors.As(err, &missing))
		assert.False(t, missing.Empty)
		assert.Contains(t, err.Error(), "nope.cfg")
	})

	t.Run("empty", func(t *testing.T) {
		path := filepath.Join(dir, "empty.cfg")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := ReadSource(path)
		var missing *MissingError
		require.True(t, errors.As(err, &missing))
		assert.True(t, missing.Empty)
	})

	t.Run("comments only", func(t *testing.T) {
		path := filepath.Join(dir, "comments.cfg")
		require.NoError(t, os.WriteFile(path, []byte("// nothing\n/* here */\n"), 0644))

		_, err := ReadSource(path)
		var missing *MissingError
		assert.True(t, errors.As(err, &missing))
	})

	t.Run("stripped content", func(t *testing.T) {
		path := filepath.Join(dir, "ok.cfg")
		require.NoError(t, os.WriteFile(path, []byte(`{"a": "b"} // c`), 0644))

		data, err := ReadSource(path)
		require.NoError(t, err)
		assert.Equal(t, `{"a": "b"}     `, string(data))
	})

	t.Run("directory", func(t *testing.T) {
		path := filepath.Join(dir, "config.d")
		require.NoError(t, os.Mkdir(path, 0755))

		_, err := ReadSource(path)
		var missing *MissingError
		require.True(t, errors.As(err, &missing), "got %T", err)
		assert.NotNil(t, missing.Err)
		assert.Contains(t, err.Error(), "not readable")
	})

	for name, content := range map[string]string{
		"null root":            "// blanked out\nnull\n",
		"array root":           `["a"]`,
		"string root":          `"a"`,
		"unterminated comment": `{"a": "b"} /* open`,
		"truncated object":     `{"a": `,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "parse.cfg")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := ReadSource(path)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, path, pe.Path)
		})
	}
}

func TestReadFileKeepsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regpaths.yaml")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nr: /opt/r\n"), 0644))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# comment\nr: /opt/r\n", string(data))
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ParseError{Path: "x.cfg", Key: "appname", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid configuration in x.cfg (appname): boom", err.Error())
}
