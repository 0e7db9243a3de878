package backend

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Command renders markup with a local plantuml executable in pipe mode
type Command struct {
	Format  string
	Command []string
}

// NewCommand creates a command backend, command defaults to plantuml
func NewCommand(format string, command ...string) *Command {
	if format == "" {
		format = "png"
	}
	if len(command) == 0 {
		command = []string{"plantuml"}
	}
	return &Command{Format: format, Command: command}
}

func (c *Command) Render(ctx context.Context, markup string) ([]byte, error) {
	args := append(append([]string{}, c.Command[1:]...), "-pipe", "-t"+c.Format)
	cmd := exec.CommandContext(ctx, c.Command[0], args...)
	cmd.Stdin = strings.NewReader("@startuml\n" + markup + "\n@enduml\n")
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "failed to run %v: %s", c.Command[0], strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
