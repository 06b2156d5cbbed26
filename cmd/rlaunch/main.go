// Command rlaunch bootstraps the worker script of an installation.
// It reads utils/config.cfg and utils/regpaths.json, prepares the log
// directory, checks the interpreter and the script and starts the script
// detached from the launcher.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mfulz/rlaunch/cmd/rlaunch/cmd"
	"github.com/mfulz/rlaunch/internal/logging"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "rlaunch",
	Short:         "Configuration-driven launcher for background worker scripts",
	Long:          cmd.LaunchCmd.Long,
	Args:          cobra.NoArgs,
	RunE:          cmd.RunLaunch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			logging.Log.Warnf("[rlaunch] %v", err)
			os.Exit(exitErr.Code)
		}

		logging.Log.Debugf("[rlaunch] %+v", err)
		fmt.Fprintf(os.Stderr, "rlaunch: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cmd.AddPersistentFlags(rootCmd)
	rootCmd.AddCommand(cmd.LaunchCmd)
	rootCmd.AddCommand(cmd.PlanCmd)
}
