package launch

import (
	"os/exec"
)

// Starter abstracts OS process creation so tests can record spawn attempts
// without creating real processes.
type Starter interface {
	Start(name string, args []string) error
}

// osStarter creates real detached processes.
type osStarter struct{}

func (osStarter) Start(name string, args []string) error {
	cmd := exec.Command(name, args...)
	// No pipe wiring: the child owns its own stdio
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		return err
	}

	// Drop the handle. The child outlives the launcher and is never waited
	// on; Release prevents it from lingering as an unreaped zombie entry in
	// our process table.
	return cmd.Process.Release()
}
