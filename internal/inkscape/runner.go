// Package inkscape is the execution layer that physically drives the
// external vector editor. It knows nothing about selections or path
// operations; it runs one fully-assembled command at a time and
// reports structured results for the caller to act on.
package inkscape

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Command represents one editor invocation.
type Command struct {
	// Binary is the editor executable (e.g. "inkscape").
	Binary string

	// Arguments are the command-line arguments.
	Arguments []string

	// WorkingDirectory is the directory to execute in. Empty means
	// the current directory.
	WorkingDirectory string

	// Timeout bounds the invocation. Zero means no limit.
	Timeout time.Duration

	// RequestID correlates log lines for one invocation. Assigned by
	// the runner when empty.
	RequestID string
}

// String returns the full command line for display and logging.
func (c Command) String() string {
	if len(c.Arguments) == 0 {
		return c.Binary
	}
	return c.Binary + " " + strings.Join(c.Arguments, " ")
}

// Result captures the outcome of one invocation.
type Result struct {
	Stdout     string
	Stderr     string
	ExitCode   int
	StartedAt  time.Time
	FinishedAt time.Time
	Duration   time.Duration
}

// Runner executes editor commands. The dispatcher depends on this
// interface so tests and dry runs never spawn a process.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// CLIRunner runs commands directly on the host via os/exec.
type CLIRunner struct {
	logger *zap.Logger
}

// NewCLIRunner returns a runner that logs through the given logger.
func NewCLIRunner(logger *zap.Logger) *CLIRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLIRunner{logger: logger}
}

// Run executes cmd and blocks until it exits. A non-zero exit status
// returns both the populated result and an error carrying the
// process's stderr, so callers can surface the editor's diagnostics.
func (r *CLIRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	if cmd.Binary == "" {
		return nil, fmt.Errorf("inkscape: binary is required")
	}
	if cmd.RequestID == "" {
		cmd.RequestID = uuid.NewString()
	}

	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	r.logger.Debug("running editor command",
		zap.String("request_id", cmd.RequestID),
		zap.String("command", cmd.String()))

	c := exec.CommandContext(ctx, cmd.Binary, cmd.Arguments...)
	c.Dir = cmd.WorkingDirectory

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	result := &Result{StartedAt: time.Now()}
	err := c.Run()
	result.FinishedAt = time.Now()
	result.Duration = result.FinishedAt.Sub(result.StartedAt)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		result.ExitCode = -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			r.logger.Warn("editor command aborted",
				zap.String("request_id", cmd.RequestID),
				zap.Error(ctxErr))
			return result, fmt.Errorf("inkscape: %s: %w", cmd.Binary, ctxErr)
		}
		r.logger.Warn("editor command failed",
			zap.String("request_id", cmd.RequestID),
			zap.Int("exit_code", result.ExitCode),
			zap.String("stderr", result.Stderr))
		if result.Stderr != "" {
			return result, fmt.Errorf("inkscape: %s exited with code %d: %s",
				cmd.Binary, result.ExitCode, strings.TrimSpace(result.Stderr))
		}
		return result, fmt.Errorf("inkscape: %s: %w", cmd.Binary, err)
	}

	r.logger.Debug("editor command finished",
		zap.String("request_id", cmd.RequestID),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// DryRunner records the commands it is given and never spawns a
// process. It is safe for concurrent use, though the dispatcher only
// runs batches sequentially.
type DryRunner struct {
	mu       sync.Mutex
	commands []Command
}

// Run records cmd and returns an empty successful result.
func (r *DryRunner) Run(_ context.Context, cmd Command) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
	return &Result{}, nil
}

// Commands returns the recorded commands in submission order.
func (r *DryRunner) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}
