//go:build !unix

package launch

import "syscall"

func detachAttr() *syscall.SysProcAttr {
	return nil
}
