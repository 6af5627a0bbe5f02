package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

const waitDelay = 2 * time.Second

// ExecRunner runs commands as real subprocesses.
type ExecRunner struct {
	// Stdout and Stderr receive the live output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
	// Timeout is the per-command ceiling; zero means DefaultTimeout.
	Timeout time.Duration
	// Logger receives debug traces; nil uses slog.Default().
	Logger *slog.Logger
}

// Run executes cmd and waits for it to finish or for the timeout to elapse.
// A non-zero exit yields *ExitError, an elapsed timeout *TimeoutError and a
// binary missing from PATH an error wrapping ErrNotFound.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Output, error) {
	bin, err := exec.LookPath(cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.Name, ErrNotFound)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Dir = cmd.Dir
	// Grandchildren holding the output pipes must not outlive the timeout by much.
	c.WaitDelay = waitDelay
	if cmd.Stdin != "" {
		c.Stdin = strings.NewReader(cmd.Stdin)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	c.Stdout = io.MultiWriter(orDiscard(r.Stdout), &stdoutBuf)
	c.Stderr = io.MultiWriter(orDiscard(r.Stderr), &stderrBuf)

	logger := r.logger()
	logger.Debug("running command", "cmd", cmd.String(), "dir", cmd.Dir, "timeout", timeout)

	start := time.Now()
	err = c.Run()
	output := &Output{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: time.Since(start),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logger.Debug("command timed out", "cmd", cmd.String(), "elapsed", output.Duration)
		return output, &TimeoutError{Command: cmd, Timeout: timeout}
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			logger.Debug("command failed", "cmd", cmd.String(), "exit", output.ExitCode, "elapsed", output.Duration)
			return output, &ExitError{Command: cmd, ExitCode: output.ExitCode, Stderr: output.Stderr}
		}
		return output, fmt.Errorf("executing %s: %w", cmd, err)
	}

	logger.Debug("command finished", "cmd", cmd.String(), "elapsed", output.Duration)
	return output, nil
}

func (r *ExecRunner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
