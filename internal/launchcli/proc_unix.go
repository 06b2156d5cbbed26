//go:build !windows

package launchcli

import (
	"os/exec"
	"syscall"

	"github.com/mfulz/rlaunch/internal/plan"
)

// configureProcAttr puts the child in its own session so it outlives the
// launcher and is not hit by signals sent to the launcher's terminal.
// There are no console windows here; the visibility is ignored.
func configureProcAttr(cmd *exec.Cmd, _ plan.WindowVisibility) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
