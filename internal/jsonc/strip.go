// Package jsonc turns human-edited JSON into standard JSON so the result can
// be handed to a strict JSON decoder. Line comments (//), block comments
// (/* */) and trailing commas are accepted. They are blanked out byte for
// byte, so decoder error offsets still point at the right line and column.
package jsonc

import (
	"bytes"
	"errors"
	"slices"

	"github.com/tailscale/hujson"
)

// ErrEmpty is returned for input holding nothing but whitespace and comments.
var ErrEmpty = errors.New("no JSON value")

// Strip returns a standardized copy of data. data itself is not modified.
func Strip(data []byte) ([]byte, error) {
	out, err := hujson.Standardize(slices.Clone(data))
	if err == nil {
		return out, nil
	}
	if blank(data) {
		return nil, ErrEmpty
	}
	return nil, err
}

// blank reports whether data is empty once comments are removed: appending a
// literal must then yield a document consisting of that literal only.
func blank(data []byte) bool {
	padded := append(slices.Clone(data), "\nnull"...)
	out, err := hujson.Standardize(padded)
	return err == nil && string(bytes.TrimSpace(out)) == "null"
}
