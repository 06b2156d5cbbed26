// Package artifact checks that the files a launch depends on are present.
package artifact

import (
	"fmt"
	"os"
)

// Artifacts holds an interpreter and a script that have both been confirmed
// to exist as regular files. The zero value is not valid; use Validate.
type Artifacts struct {
	interpreter string
	script      string
}

func (a Artifacts) Interpreter() string { return a.interpreter }
func (a Artifacts) Script() string      { return a.script }

// Valid reports whether a came from a successful Validate.
func (a Artifacts) Valid() bool {
	return a.interpreter != "" && a.script != ""
}

// Validate confirms both interpreter and script exist. Both checks must pass.
func Validate(interpreter, script string) (Artifacts, error) {
	if !isRegularFile(interpreter) {
		return Artifacts{}, &ExecutableNotFoundError{Path: interpreter}
	}
	if !isRegularFile(script) {
		return Artifacts{}, &ScriptNotFoundError{Path: script}
	}
	return Artifacts{interpreter: interpreter, script: script}, nil
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// ExecutableNotFoundError names an interpreter that could not be found.
// Entry is set instead of Path when the path registry has no location for
// the interpreter at all.
type ExecutableNotFoundError struct {
	Path  string
	Entry string
}

func (e *ExecutableNotFoundError) Error() string {
	if e.Path == "" && e.Entry != "" {
		return fmt.Sprintf("interpreter executable not found: no path registered for %q", e.Entry)
	}
	return fmt.Sprintf("interpreter executable not found: %s", e.Path)
}

// ScriptNotFoundError names an entry script that could not be found.
type ScriptNotFoundError struct {
	Path string
}

func (e *ScriptNotFoundError) Error() string {
	return fmt.Sprintf("script not found: %s", e.Path)
}
