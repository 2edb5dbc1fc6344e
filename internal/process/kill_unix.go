//go:build !windows

package process

import "syscall"

// KillBrowserTree sends SIGKILL to the process group led by pid, so the
// renderer and GPU helpers go down with the browser. Non-positive pids are
// ignored: -0 would address the caller's own group.
func KillBrowserTree(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
