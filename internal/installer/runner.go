// Package installer drives the external Smithery CLI to install servers
// into a client configuration.
package installer

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Output captures what an external command wrote.
type Output struct {
	Stdout string
	Stderr string
}

// Runner executes external commands. It exists so tests can substitute the
// real CLI with a scripted fake.
type Runner interface {
	// Run executes the command with the given stdin, honoring ctx for
	// cancellation and deadlines. When the context expires the context
	// error is returned, not the kill-induced exit error.
	Run(ctx context.Context, stdin string, name string, args ...string) (Output, error)
}

type execRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() Runner {
	return &execRunner{}
}

func (*execRunner) Run(ctx context.Context, stdin string, name string, args ...string) (Output, error) {
	//nolint:gosec // The command is the configured installer CLI.
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}

	// A deadline kill surfaces as an exit error; report the context error
	// instead so callers can tell a timeout from a CLI failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return out, ctxErr
	}
	return out, err
}
