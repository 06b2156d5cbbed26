// Package interpreter defines the interpreter kinds rlaunch knows how to start.
// A Profile turns an install directory from the path registry into an
// executable path and supplies the flags for a non-interactive, isolated run.
package interpreter

import (
	"fmt"
	"runtime"
	"sort"
)

// Profile describes how to invoke one kind of interpreter.
type Profile interface {
	// Name is the symbolic name, also used as the path registry key.
	Name() string
	// Executable returns the interpreter binary inside installDir.
	Executable(installDir string) string
	// Flags returns the invocation flags placed before the script.
	Flags() []string
}

// profiles stores all registered profiles by name.
var profiles = map[string]Profile{}

// Register adds a profile. It panics on duplicate names.
func Register(p Profile) {
	if _, exists := profiles[p.Name()]; exists {
		panic(fmt.Sprintf("interpreter profile already registered: %s", p.Name()))
	}
	profiles[p.Name()] = p
}

// Get returns the profile registered under name.
func Get(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown interpreter: %s (known: %v)", name, Names())
	}
	return p, nil
}

// Names lists the registered profile names in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// exe appends the platform's executable suffix.
func exe(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}
