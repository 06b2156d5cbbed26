package interpreter

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinProfiles(t *testing.T) {
	assert.Equal(t, []string{"python", "r"}, Names())

	r, err := Get("r")
	require.NoError(t, err)
	assert.Equal(t, []string{"--vanilla"}, r.Flags())

	want := filepath.Join("/opt/r", "bin", "Rscript")
	if runtime.GOOS == "windows" {
		want += ".exe"
	}
	assert.Equal(t, want, r.Executable("/opt/r"))

	py, err := Get("python")
	require.NoError(t, err)
	assert.Equal(t, []string{"-I", "-u"}, py.Flags())
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("julia")
	assert.ErrorContains(t, err, "unknown interpreter: julia")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() { Register(rscript{}) })
}
