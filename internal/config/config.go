// Package config provides loading and parsing of the rlaunch configuration
// file using Viper. The file is JSON that may carry // and /* */ comments;
// comments are removed before Viper sees it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mfulz/rlaunch/internal/configloader"
	"github.com/mfulz/rlaunch/internal/logging"
	"github.com/mfulz/rlaunch/internal/plan"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is the configuration file relative to the working directory.
	DefaultPath = "utils/config.cfg"
	// EnvPath overrides DefaultPath.
	EnvPath = "RLAUNCH_CONFIG"

	DefaultErrorLog    = "error.log"
	DefaultInterpreter = "r"
	DefaultScript      = "utils/package_manager.R"
)

// Config represents the full structure of the rlaunch configuration file.
type Config struct {
	AppName  string         `mapstructure:"appname"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Launcher LauncherConfig `mapstructure:"launcher"`
}

// LoggingConfig controls where the launched process writes its output.
type LoggingConfig struct {
	UseUserProfile bool   `mapstructure:"use_userprofile"` // log under ~/.<appname> instead of ./log
	ErrorLog       string `mapstructure:"error_log"`       // file name inside the log directory
}

// LauncherConfig holds optional knobs of the launcher itself.
type LauncherConfig struct {
	Interpreter string         `mapstructure:"interpreter"` // registry key and interpreter profile
	Script      string         `mapstructure:"script"`      // entry script, relative to the working directory
	Window      string         `mapstructure:"window"`      // hidden, normal or minimized
	Wait        bool           `mapstructure:"wait"`        // block until the child exits
	Log         logging.Config `mapstructure:"log"`
}

// Window returns the parsed window visibility. Load has already rejected
// unknown names.
func (c *Config) Window() plan.WindowVisibility {
	w, _ := plan.ParseWindowVisibility(c.Launcher.Window)
	return w
}

// Load reads the configuration at path.
func Load(path string) (*Config, error) {
	data, err := configloader.ReadSource(path)
	if err != nil {
		return nil, err
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, &configloader.ParseError{Path: path, Err: err}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &configloader.ParseError{Path: path, Err: fmt.Errorf("config unmarshal failed: %w", err)}
	}

	// an explicitly empty error_log means "use the default" too
	if cfg.Logging.ErrorLog == "" {
		cfg.Logging.ErrorLog = DefaultErrorLog
	}
	if cfg.Launcher.Interpreter == "" {
		cfg.Launcher.Interpreter = DefaultInterpreter
	}
	if cfg.Launcher.Script == "" {
		cfg.Launcher.Script = DefaultScript
	}
	cfg.Launcher.Script = filepath.FromSlash(cfg.Launcher.Script)

	if err := cfg.validate(); err != nil {
		var pe *configloader.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := logging.DefaultConfig()

	v.SetDefault("logging.use_userprofile", false)
	v.SetDefault("logging.error_log", DefaultErrorLog)
	v.SetDefault("launcher.interpreter", DefaultInterpreter)
	v.SetDefault("launcher.script", DefaultScript)
	v.SetDefault("launcher.window", plan.Hidden.String())
	v.SetDefault("launcher.wait", false)
	v.SetDefault("launcher.log.level", def.Level)
	v.SetDefault("launcher.log.to_stderr", def.ToStderr)
}

func (c *Config) validate() error {
	if c.Logging.UseUserProfile && c.AppName == "" {
		return &configloader.ParseError{
			Key: "appname",
			Err: errors.New("required when logging.use_userprofile is set"),
		}
	}
	// appname names a directory under the user's home
	if c.AppName != "" && (filepath.Base(c.AppName) != c.AppName || strings.ContainsAny(c.AppName, `/\`)) {
		return &configloader.ParseError{
			Key: "appname",
			Err: fmt.Errorf("%q must not contain path separators", c.AppName),
		}
	}
	if filepath.Base(c.Logging.ErrorLog) != c.Logging.ErrorLog {
		return &configloader.ParseError{
			Key: "logging.error_log",
			Err: fmt.Errorf("%q must be a plain file name", c.Logging.ErrorLog),
		}
	}
	if _, err := plan.ParseWindowVisibility(c.Launcher.Window); err != nil {
		return &configloader.ParseError{Key: "launcher.window", Err: err}
	}
	return nil
}
