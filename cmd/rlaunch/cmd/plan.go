package cmd

import (
	"github.com/mfulz/rlaunch/internal/pipeline"
	"github.com/mfulz/rlaunch/internal/plan"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// planOutput is what the plan command prints.
type planOutput struct {
	RunID   string          `yaml:"run_id"`
	State   string          `yaml:"state"`
	AppName string          `yaml:"appname,omitempty"`
	LogDir  string          `yaml:"log_dir"`
	Plan    plan.LaunchPlan `yaml:"plan"`
}

// PlanCmd runs all checks and prints the launch plan without starting anything.
var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Validate the setup and print the launch plan as YAML",
	Long: `Runs every step of a launch except starting the process and prints the
resulting plan. The log directory is created if needed; the log file is not.`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		opts, err := options(c)
		if err != nil {
			return err
		}

		res, err := pipeline.Prepare(opts)
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(c.OutOrStdout())
		enc.SetIndent(2)

		if err := enc.Encode(planOutput{
			RunID:   res.RunID,
			State:   res.State.String(),
			AppName: res.Config.AppName,
			LogDir:  res.Location.Dir,
			Plan:    res.Plan,
		}); err != nil {
			return err
		}
		return enc.Close()
	},
}
