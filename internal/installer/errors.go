package installer

import (
	"fmt"
	"time"
)

// ExitError reports a definite non-zero exit from the installer CLI. This
// failure class is deterministic and is never retried.
type ExitError struct {
	QualifiedName string
	Client        string
	Command       string
	Stderr        string
	ExitCode      int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("installation failed for %s on %s client (exit code %d)",
		e.QualifiedName, e.Client, e.ExitCode)
}

// TimeoutError reports an installer run that exceeded its deadline on every
// attempt.
type TimeoutError struct {
	QualifiedName string
	Client        string
	Command       string
	Timeout       time.Duration
	Attempts      int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("installation of %s timed out after %s (tried %d times)",
		e.QualifiedName, e.Timeout, e.Attempts)
}
