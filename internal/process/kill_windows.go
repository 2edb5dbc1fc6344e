//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillBrowserTree force-kills the process tree rooted at pid.
// Non-positive pids are ignored.
func KillBrowserTree(pid int) {
	if pid <= 0 {
		return
	}
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is an integer
}
