package pipeline

import "fmt"

// State is a step of the launch pipeline. States only move forward; any
// failure ends the run in Aborted.
type State int

const (
	Init State = iota
	ConfigLoaded
	RegistryLoaded
	LogReady
	ArtifactsValidated
	PlanBuilt
	Launched
	Aborted
)

var stateNames = [...]string{
	Init:               "init",
	ConfigLoaded:       "config-loaded",
	RegistryLoaded:     "registry-loaded",
	LogReady:           "log-ready",
	ArtifactsValidated: "artifacts-validated",
	PlanBuilt:          "plan-built",
	Launched:           "launched",
	Aborted:            "aborted",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// AbortError ends a run. State is the last state reached before the failure.
type AbortError struct {
	State State
	Err   error
}

func (e *AbortError) Error() string {
	return e.Err.Error()
}

func (e *AbortError) Unwrap() error {
	return e.Err
}
