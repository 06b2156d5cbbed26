// Package launchcli starts a LaunchPlan as an independent process.
// The child's output streams are bound to the plan's log file and, unless the
// plan asks to wait, the launcher lets go of the child right after it has
// started: no supervision, no restart, no exit code collection.
package launchcli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/mfulz/rlaunch/internal/logging"
	"github.com/mfulz/rlaunch/internal/plan"
)

// Result describes a started process.
type Result struct {
	PID      int
	Waited   bool // true if the launcher waited for the child to exit
	ExitCode int  // only meaningful when Waited is set
}

// Starter starts launch plans.
type Starter interface {
	Launch(p plan.LaunchPlan) (Result, error)
}

// Exec starts plans as operating system processes.
type Exec struct{}

// Launch starts p. See the package documentation for the lifecycle.
func (Exec) Launch(p plan.LaunchPlan) (Result, error) {
	return Launch(p)
}

// Launch starts p as a detached process.
func Launch(p plan.LaunchPlan) (Result, error) {
	cmd := exec.Command(p.Interpreter, p.Args()...)
	cmd.Dir = p.Dir
	cmd.Env = append(os.Environ(), p.Env...)

	stdout, err := openLog(p.Stdout)
	if err != nil {
		return Result{}, &ProcessStartError{Path: p.Interpreter, Err: err}
	}
	defer stdout.Close()

	stderr := stdout
	if p.Stderr != p.Stdout {
		stderr, err = openLog(p.Stderr)
		if err != nil {
			return Result{}, &ProcessStartError{Path: p.Interpreter, Err: err}
		}
		defer stderr.Close()
	}

	// separate the runs sharing an append-only log
	fmt.Fprintf(stdout, "--- %s %s ---\n", time.Now().Format(time.RFC3339), strings.Join(cmd.Args, " "))

	// stdin stays nil: the child reads from the null device
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	configureProcAttr(cmd, p.Window)

	if err := cmd.Start(); err != nil {
		return Result{}, &ProcessStartError{Path: p.Interpreter, Err: err}
	}

	res := Result{PID: cmd.Process.Pid}
	logging.Log.Debugf("[launch] started %s (PID %d, window %s)", p.Interpreter, res.PID, p.Window)

	if !p.Wait {
		// hand the child off; the launcher keeps no reference to it
		if err := cmd.Process.Release(); err != nil {
			logging.Log.Warnf("[launch] failed to release PID %d: %v", res.PID, err)
		}
		return res, nil
	}

	res.Waited = true
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, fmt.Errorf("waiting for PID %d failed: %w", res.PID, err)
		}
	}
	res.ExitCode = cmd.ProcessState.ExitCode()
	return res, nil
}

// openLog opens path for appending, creating it if needed.
func openLog(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

// ProcessStartError reports that the operating system refused to start the
// interpreter, or that its output could not be bound to the log file.
type ProcessStartError struct {
	Path string
	Err  error
}

func (e *ProcessStartError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Path, e.Err)
}

func (e *ProcessStartError) Unwrap() error {
	return e.Err
}
