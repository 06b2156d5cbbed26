package configloader

import "fmt"

// MissingError reports a configuration source that is absent, unreadable or
// empty.
type MissingError struct {
	Path  string
	Empty bool
	Err   error // set when the file exists but cannot be read
}

func (e *MissingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration file not readable: %s: %v", e.Path, e.Err)
	}
	if e.Empty {
		return fmt.Sprintf("configuration file is empty: %s", e.Path)
	}
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

func (e *MissingError) Unwrap() error {
	return e.Err
}

// ParseError reports a configuration source whose content, once comments are
// stripped, is not valid JSON or does not fit the expected model.
type ParseError struct {
	Path string
	Key  string // offending key, if the failure is tied to one
	Err  error
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid configuration in %s (%s): %v", e.Path, e.Key, e.Err)
	}
	return fmt.Sprintf("invalid configuration in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
