package process

// Notes:
// - Only pids that cannot name a live browser are used: a huge pid, and the
//   non-positive ones that would otherwise reach the test's own group.

import "testing"

func TestKillBrowserTree_NoSuchProcess(t *testing.T) {
	t.Parallel()

	for _, pid := range []int{999999999, 0, -1} {
		KillBrowserTree(pid)
	}
}
