// Package registry loads the path registry: a flat mapping from symbolic
// interpreter names (e.g. "r") to install locations on this machine.
//
// JSON registries (the default, comments allowed) are decoded with Viper,
// YAML registries (.yaml, .yml) with yaml.v3.
package registry

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mfulz/rlaunch/internal/configloader"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is the registry file relative to the working directory.
	DefaultPath = "utils/regpaths.json"
	// EnvPath overrides DefaultPath.
	EnvPath = "RLAUNCH_REGISTRY"
)

// Registry maps lower-cased symbolic names to filesystem paths.
type Registry struct {
	entries map[string]string
}

// Load reads the registry at path.
func Load(path string) (*Registry, error) {
	read, decode := configloader.ReadSource, decodeJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		read, decode = configloader.ReadFile, decodeYAML
	}

	data, err := read(path)
	if err != nil {
		return nil, err
	}
	raw, err := decode(data)
	if err != nil {
		return nil, &configloader.ParseError{Path: path, Err: err}
	}

	return fromMap(path, raw)
}

// New builds a registry from an in-memory mapping.
func New(entries map[string]string) *Registry {
	r := &Registry{entries: make(map[string]string, len(entries))}
	for name, path := range entries {
		r.entries[strings.ToLower(name)] = path
	}
	return r
}

func decodeJSON(data []byte) (map[string]any, error) {
	// Names are keys, not paths into a tree: keep dots literal.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return v.AllSettings(), nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return raw, nil
}

func fromMap(path string, raw map[string]any) (*Registry, error) {
	r := &Registry{entries: make(map[string]string, len(raw))}
	for name, val := range raw {
		s, ok := val.(string)
		if !ok {
			return nil, &configloader.ParseError{
				Path: path,
				Key:  name,
				Err:  fmt.Errorf("expected a path string, got %T", val),
			}
		}
		r.entries[strings.ToLower(name)] = s
	}
	return r, nil
}

// Lookup returns the path registered under name. Names are case-insensitive.
// Whether a missing entry is fatal is up to the caller.
func (r *Registry) Lookup(name string) (string, bool) {
	p, ok := r.entries[strings.ToLower(name)]
	return p, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
