package cmd

import (
	"fmt"

	"github.com/mfulz/rlaunch/internal/pipeline"
	"github.com/spf13/cobra"
)

// ExitCodeError carries the exit code of a process the launcher waited for.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("launched process exited with code %d", e.Code)
}

// LaunchCmd resolves the configuration and starts the worker script.
// It is also the action of the root command.
var LaunchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Start the worker script detached, logging to the configured error log",
	Long: `Loads the configuration and the path registry, prepares the log directory,
checks that the interpreter and the entry script exist and starts the script
in the background. Output of the script goes to the error log.

Examples:
  rlaunch
  rlaunch launch --workdir /srv/app
  rlaunch --wait --window normal`,
	Args: cobra.NoArgs,
	RunE: RunLaunch,
}

// RunLaunch is the RunE of LaunchCmd.
func RunLaunch(c *cobra.Command, args []string) error {
	opts, err := options(c)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(opts)
	if err != nil {
		return err
	}

	if res.Launch.Waited && res.Launch.ExitCode != 0 {
		return &ExitCodeError{Code: res.Launch.ExitCode}
	}
	return nil
}
