package installer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	// DefaultTimeout bounds a single installer attempt.
	DefaultTimeout = 180 * time.Second

	// maxAttempts bounds retries for failures that look transient (timeout
	// or unclassified error). A definite non-zero exit is never retried.
	maxAttempts = 2

	retryInterval = 2 * time.Second

	// autoConfirm answers any interactive prompt the CLI raises.
	autoConfirm = "y\n"
)

// exitCoder matches exec.ExitError and equivalent failures from a Runner.
type exitCoder interface {
	ExitCode() int
}

// Request describes one install invocation.
type Request struct {
	QualifiedName string

	// Client is the target client configuration, e.g. "claude".
	Client string

	// Config is an optional configuration object passed to the server.
	Config map[string]any

	// Timeout bounds each attempt; zero means DefaultTimeout.
	Timeout time.Duration
}

// Result reports a completed install.
type Result struct {
	QualifiedName string
	Client        string

	// Command is the full command line that was executed, for reporting.
	Command string

	Output string
}

// Installer runs the external installer CLI with bounded retries.
type Installer struct {
	runner  Runner
	command []string
}

// DefaultCommand is the installer CLI invocation prefix.
func DefaultCommand() []string {
	return []string{"npx", "-y", "@smithery/cli@latest"}
}

// New creates an installer using the given command prefix; nil selects
// DefaultCommand.
func New(runner Runner, command []string) *Installer {
	if len(command) == 0 {
		command = DefaultCommand()
	}
	return &Installer{runner: runner, command: command}
}

// Install runs `<cli> install <qualifiedName> --client <client>
// [--config <json>]`, feeding an affirmative answer to any prompt.
//
// Attempts that time out or fail for unclassified reasons are retried up to
// the attempt bound; a CLI that exits non-zero is treated as a permanent,
// deterministic failure and surfaces immediately as *ExitError. Exhausted
// timeouts surface as *TimeoutError.
func (i *Installer) Install(ctx context.Context, req Request) (*Result, error) {
	name := strings.TrimSpace(req.QualifiedName)
	if name == "" {
		return nil, fmt.Errorf("qualified name is required")
	}

	args := append([]string{}, i.command[1:]...)
	args = append(args, "install", name, "--client", req.Client)
	if len(req.Config) > 0 {
		cfg, err := json.Marshal(req.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		args = append(args, "--config", string(cfg))
	}
	commandLine := strings.Join(append([]string{i.command[0]}, args...), " ")

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	attempts := 0
	out, err := backoff.Retry(ctx, func() (Output, error) {
		attempts++
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		out, runErr := i.runner.Run(attemptCtx, autoConfirm, i.command[0], args...)
		if runErr == nil {
			return out, nil
		}

		var ec exitCoder
		if errors.As(runErr, &ec) && attemptCtx.Err() == nil {
			return out, backoff.Permanent(&ExitError{
				QualifiedName: name,
				Client:        req.Client,
				Command:       commandLine,
				Stderr:        out.Stderr,
				ExitCode:      ec.ExitCode(),
			})
		}

		slog.Warn("Installer attempt failed, may retry",
			"qualified_name", name, "attempt", attempts, "error", runErr)
		return out, runErr
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(retryInterval)),
		backoff.WithMaxTries(maxAttempts),
	)

	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, exitErr
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TimeoutError{
				QualifiedName: name,
				Client:        req.Client,
				Command:       commandLine,
				Timeout:       timeout,
				Attempts:      attempts,
			}
		}
		return nil, fmt.Errorf("installer failed after %d attempts: %w", attempts, err)
	}

	return &Result{
		QualifiedName: name,
		Client:        req.Client,
		Command:       commandLine,
		Output:        out.Stdout,
	}, nil
}
