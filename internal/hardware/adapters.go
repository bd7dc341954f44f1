package hardware

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// CommandRunner executes external commands.
type CommandRunner interface {
	Run(command string, args ...string) ([]byte, error)
}

// DefaultCommandRunner implements CommandRunner using exec.
type DefaultCommandRunner struct{}

// Run executes a command with arguments.
func (c *DefaultCommandRunner) Run(command string, args ...string) ([]byte, error) {
	const commandTimeout = 2 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, command, args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running command %s: %w", command, err)
	}
	return output, nil
}
