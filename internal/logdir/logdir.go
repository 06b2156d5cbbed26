// Package logdir decides where the launched process writes its output.
//
// Installs deployed per user keep the log next to the install (./log).
// Installs shared from a central location (e.g. a network share) set
// logging.use_userprofile and log to ~/.<appname> instead.
package logdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mfulz/rlaunch/internal/config"
)

// LocalDir is the log directory, relative to the working directory, used
// unless logging.use_userprofile is set.
const LocalDir = "log"

// osUserHomeDir is swapped out in tests.
var osUserHomeDir = os.UserHomeDir

// Location is a resolved log destination whose directory exists.
type Location struct {
	Dir      string
	FileName string
}

// Path returns the full path of the log file.
func (l Location) Path() string {
	return filepath.Join(l.Dir, l.FileName)
}

// Dir computes the log directory for cfg without touching the filesystem.
func Dir(cfg *config.Config, workDir string) (string, error) {
	if !cfg.Logging.UseUserProfile {
		return filepath.Join(workDir, LocalDir), nil
	}

	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home directory: %w", err)
	}
	return filepath.Join(home, "."+cfg.AppName), nil
}

// Resolve computes the log directory for cfg and creates it if needed.
// A directory that already exists is not an error.
func Resolve(cfg *config.Config, workDir string) (Location, error) {
	dir, err := Dir(cfg, workDir)
	if err != nil {
		return Location{}, &DirectoryCreateError{Dir: dir, Err: err}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return Location{}, &DirectoryCreateError{Dir: dir, Err: err}
	}

	name := cfg.Logging.ErrorLog
	if name == "" {
		name = config.DefaultErrorLog
	}
	return Location{Dir: dir, FileName: name}, nil
}

// DirectoryCreateError reports a log directory that could not be provided.
type DirectoryCreateError struct {
	Dir string
	Err error
}

func (e *DirectoryCreateError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("failed to create log directory: %v", e.Err)
	}
	return fmt.Sprintf("failed to create log directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryCreateError) Unwrap() error {
	return e.Err
}
