// Package cmd provides the CLI commands of the rlaunch binary.
package cmd

import (
	"github.com/mfulz/rlaunch/internal/config"
	"github.com/mfulz/rlaunch/internal/pipeline"
	"github.com/mfulz/rlaunch/internal/plan"
	"github.com/mfulz/rlaunch/internal/registry"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	registryPath string
	scriptPath   string
	workDir      string
	windowName   string
	logLevel     string
	wait         bool
)

// AddPersistentFlags registers the flags shared by all rlaunch commands.
func AddPersistentFlags(c *cobra.Command) {
	f := c.PersistentFlags()
	f.StringVarP(&configPath, "config", "c", "", "Configuration file (default "+config.DefaultPath+", env "+config.EnvPath+")")
	f.StringVarP(&registryPath, "registry", "r", "", "Path registry file (default "+registry.DefaultPath+", env "+registry.EnvPath+")")
	f.StringVarP(&scriptPath, "script", "s", "", "Entry script (default from config, "+config.DefaultScript+")")
	f.StringVarP(&workDir, "workdir", "w", "", "Working directory relative paths are resolved against (default current directory)")
	f.StringVar(&windowName, "window", "", "Window visibility: hidden, normal or minimized (default from config)")
	f.StringVar(&logLevel, "log-level", "", "Launcher log level: debug, info, warn, error")
	f.BoolVar(&wait, "wait", false, "Wait for the launched process and exit with its exit code")
}

// options turns the parsed flags into pipeline options. Flags that were not
// given leave the configuration file in charge.
func options(c *cobra.Command) (pipeline.Options, error) {
	opts := pipeline.Options{
		WorkDir:      workDir,
		ConfigPath:   configPath,
		RegistryPath: registryPath,
		ScriptPath:   scriptPath,
		LogLevel:     logLevel,
	}

	if c.Flags().Changed("window") {
		w, err := plan.ParseWindowVisibility(windowName)
		if err != nil {
			return opts, err
		}
		opts.Window = &w
	}
	if c.Flags().Changed("wait") {
		opts.Wait = &wait
	}
	return opts, nil
}
