//go:build windows

package launchcli

import (
	"os/exec"
	"syscall"

	"github.com/mfulz/rlaunch/internal/plan"
)

// Process creation flags not exported by package syscall.
const (
	createNewConsole = 0x00000010
	createNoWindow   = 0x08000000
)

// configureProcAttr maps the window visibility onto process creation flags.
// SysProcAttr cannot request a minimized start, so Minimized gets its own
// console like Normal.
func configureProcAttr(cmd *exec.Cmd, w plan.WindowVisibility) {
	attr := &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}

	switch w {
	case plan.Normal, plan.Minimized:
		attr.CreationFlags |= createNewConsole
	default:
		attr.HideWindow = true
		attr.CreationFlags |= createNoWindow
	}

	cmd.SysProcAttr = attr
}
