// Package configloader locates and reads the comment-tolerant JSON files the
// launcher is driven by. It is shared by the configuration and the path
// registry loaders, which only differ in the model they decode into.
package configloader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/mfulz/rlaunch/internal/jsonc"
)

// ResolvePath returns the file to load for a given source.
// It checks, in order:
// 1. an explicit path (e.g. from a command line flag)
// 2. the environment variable envKey, if set
// 3. def
//
// Relative results are anchored at baseDir.
func ResolvePath(explicit, envKey, def, baseDir string) string {
	path := def
	if env := os.Getenv(envKey); envKey != "" && env != "" {
		path = env
	}
	if explicit != "" {
		path = explicit
	}
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	return filepath.Clean(path)
}

// ReadFile reads the file at path as is. An absent or unreadable file, or
// one holding nothing but whitespace, yields a *MissingError.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingError{Path: path}
		}
		return nil, &MissingError{Path: path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &MissingError{Path: path, Empty: true}
	}
	return data, nil
}

// ReadSource reads the JSON file at path and strips its comments.
// A file holding nothing but whitespace and comments yields a *MissingError.
// Anything that is not a single JSON object yields a *ParseError.
func ReadSource(path string) ([]byte, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	stripped, err := jsonc.Strip(data)
	if err != nil {
		if errors.Is(err, jsonc.ErrEmpty) {
			return nil, &MissingError{Path: path, Empty: true}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	if trimmed := bytes.TrimSpace(stripped); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &ParseError{Path: path, Err: errors.New("top-level value must be a JSON object")}
	}
	return stripped, nil
}
