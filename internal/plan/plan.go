// Package plan composes validated launch inputs into a LaunchPlan.
// Building a plan does no I/O.
package plan

import (
	"maps"
	"slices"

	"github.com/mfulz/rlaunch/internal/artifact"
)

// LaunchPlan is a fully prepared, ready-to-start invocation.
type LaunchPlan struct {
	Interpreter string           `yaml:"interpreter"`
	Flags       []string         `yaml:"flags"`
	Script      string           `yaml:"script"`
	Stdout      string           `yaml:"stdout"`
	Stderr      string           `yaml:"stderr"`
	Window      WindowVisibility `yaml:"window"`
	Wait        bool             `yaml:"wait"`
	Dir         string           `yaml:"dir,omitempty"` // child working directory, empty = inherit
	Env         []string         `yaml:"env,omitempty"` // KEY=VALUE pairs added to the inherited environment
}

// Options are the launch settings that do not come from validation.
type Options struct {
	Window WindowVisibility
	Wait   bool
	Dir    string
	Env    map[string]string
}

// Args returns the argument vector after the executable.
func (p LaunchPlan) Args() []string {
	args := make([]string, 0, len(p.Flags)+1)
	args = append(args, p.Flags...)
	return append(args, p.Script)
}

// Build composes a plan. Both streams go to logFile so one file holds the
// complete output of a run. It panics if a was not produced by
// artifact.Validate or logFile is empty; both are programming errors.
func Build(a artifact.Artifacts, flags []string, logFile string, opts Options) LaunchPlan {
	if !a.Valid() {
		panic("plan: artifacts not validated")
	}
	if logFile == "" {
		panic("plan: empty log file")
	}

	p := LaunchPlan{
		Interpreter: a.Interpreter(),
		Flags:       append([]string(nil), flags...),
		Script:      a.Script(),
		Stdout:      logFile,
		Stderr:      logFile,
		Window:      opts.Window,
		Wait:        opts.Wait,
		Dir:         opts.Dir,
	}

	for _, k := range slices.Sorted(maps.Keys(opts.Env)) {
		p.Env = append(p.Env, k+"="+opts.Env[k])
	}
	return p
}
