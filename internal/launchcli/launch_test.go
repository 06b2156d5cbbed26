//go:build !windows

package launchcli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mfulz/rlaunch/internal/artifact"
	"github.com/mfulz/rlaunch/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture writes an executable interpreter stand-in and a script and returns
// a plan logging to dir/log/error.log.
func fixture(t *testing.T, interpreter string, opts plan.Options) plan.LaunchPlan {
	t.Helper()
	dir := t.TempDir()

	interp := filepath.Join(dir, "bin", "interp")
	script := filepath.Join(dir, "script")
	require.NoError(t, os.MkdirAll(filepath.Dir(interp), 0755))
	require.NoError(t, os.WriteFile(interp, []byte(interpreter), 0755))
	require.NoError(t, os.WriteFile(script, []byte("payload\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "log"), 0755))

	a, err := artifact.Validate(interp, script)
	require.NoError(t, err)
	return plan.Build(a, []string{"--quiet"}, filepath.Join(dir, "log", "error.log"), opts)
}

const echoInterpreter = `#!/bin/sh
echo "args: $*"
echo "run: $RLAUNCH_RUN_ID"
echo "oops" >&2
exit 3
`

func TestLaunchWait(t *testing.T) {
	p := fixture(t, echoInterpreter, plan.Options{
		Wait: true,
		Env:  map[string]string{"RLAUNCH_RUN_ID": "run-1"},
	})

	res, err := Launch(p)
	require.NoError(t, err)
	assert.True(t, res.Waited)
	assert.Equal(t, 3, res.ExitCode)
	assert.NotZero(t, res.PID)

	data, err := os.ReadFile(p.Stdout)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "args: --quiet "+p.Script)
	assert.Contains(t, out, "run: run-1")
	assert.Contains(t, out, "oops")
}

func TestLaunchAppends(t *testing.T) {
	p := fixture(t, echoInterpreter, plan.Options{Wait: true})
	require.NoError(t, os.WriteFile(p.Stdout, []byte("previous run\n"), 0644))

	_, err := Exec{}.Launch(p)
	require.NoError(t, err)

	data, err := os.ReadFile(p.Stdout)
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous run\n--- ")
	assert.Contains(t, string(data), "oops")
}

func TestLaunchDetached(t *testing.T) {
	p := fixture(t, "#!/bin/sh\nsleep 1\necho done\n", plan.Options{})

	start := time.Now()
	res, err := Launch(p)
	require.NoError(t, err)
	assert.False(t, res.Waited)
	assert.NotZero(t, res.PID)
	assert.Less(t, time.Since(start), time.Second)

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(p.Stdout)
		return err == nil && len(data) > 0 && string(data[len(data)-5:]) == "done\n"
	}, 5*time.Second, 50*time.Millisecond)
}

func TestLaunchStartError(t *testing.T) {
	p := fixture(t, echoInterpreter, plan.Options{})
	// not executable: the OS refuses to start it
	require.NoError(t, os.Chmod(p.Interpreter, 0644))

	_, err := Launch(p)

	var pse *ProcessStartError
	require.True(t, errors.As(err, &pse))
	assert.Equal(t, p.Interpreter, pse.Path)
}

func TestLaunchLogUnwritable(t *testing.T) {
	p := fixture(t, echoInterpreter, plan.Options{})
	p.Stdout = filepath.Join(t.TempDir(), "missing", "error.log")
	p.Stderr = p.Stdout

	_, err := Launch(p)

	var pse *ProcessStartError
	assert.True(t, errors.As(err, &pse))
}
