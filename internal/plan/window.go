package plan

import (
	"fmt"
	"strings"
)

// WindowVisibility selects how the launched process is presented.
// It only has an effect on platforms with a window system concept for
// console processes; elsewhere it is ignored.
type WindowVisibility int

const (
	Hidden WindowVisibility = iota
	Normal
	Minimized
)

var windowNames = map[WindowVisibility]string{
	Hidden:    "hidden",
	Normal:    "normal",
	Minimized: "minimized",
}

func (w WindowVisibility) String() string {
	if name, ok := windowNames[w]; ok {
		return name
	}
	return fmt.Sprintf("WindowVisibility(%d)", int(w))
}

// ParseWindowVisibility converts a name as used in the configuration file.
// The empty string maps to Hidden.
func ParseWindowVisibility(s string) (WindowVisibility, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Hidden, nil
	}
	for w, name := range windowNames {
		if name == s {
			return w, nil
		}
	}
	return Hidden, fmt.Errorf("unknown window visibility %q (want hidden, normal or minimized)", s)
}

// MarshalText lets the visibility appear by name in YAML output.
func (w WindowVisibility) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}
