//go:build unix

package launch

import "syscall"

// detachAttr puts the child in its own session so it is independent of the
// launcher's process group and survives the launcher exiting.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
