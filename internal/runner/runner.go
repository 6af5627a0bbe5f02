package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultTimeout bounds every subprocess when no explicit timeout is configured.
const DefaultTimeout = 2 * time.Minute

// ErrNotFound is returned when the requested binary is not on PATH.
var ErrNotFound = errors.New("executable not found")

// Runner executes a single external command to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// Command describes one subprocess invocation.
type Command struct {
	Name  string   // binary, resolved against PATH
	Args  []string // arguments, without the binary
	Dir   string   // working directory; empty means the current directory
	Stdin string   // fed to the process on stdin when non-empty
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Output captures the result of a command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Command  Command
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	if tail := lastLines(e.Stderr, 5); tail != "" {
		msg += ":\n" + tail
	}
	return msg
}

// TimeoutError reports a command killed after exceeding its time ceiling.
type TimeoutError struct {
	Command Command
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Command, e.Timeout)
}

// lastLines returns at most n trailing non-empty lines of s.
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	var kept []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return strings.Join(kept, "\n")
}
