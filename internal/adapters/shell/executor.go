// Package shell provides the subprocess executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/parsnip/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec. Every spawn gets a job
// handle with its own stdout/stderr buffers, keyed uniquely so output from
// concurrent pipelines never mixes. The handle is dropped when the process
// exits.
type Executor struct {
	logger ports.Logger

	mu     sync.Mutex
	seq    atomic.Uint64
	active map[uint64]*job
}

type job struct {
	key    uint64
	label  string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		active: make(map[uint64]*job),
	}
}

// Execute spawns the step's command, blocks until it exits, and returns the
// captured output. Exit code zero is success; anything else is a
// domain.ErrStepFailed carrying the exit code.
func (e *Executor) Execute(ctx context.Context, step *domain.ShellStep) (domain.StepOutput, error) {
	j := e.register(step)
	defer e.release(j)

	//nolint:gosec // commands come from the pipeline builder, not raw user input
	cmd := exec.CommandContext(ctx, step.Command, step.Args...)
	cmd.Dir = step.Dir
	cmd.Stdout = &j.stdout
	cmd.Stderr = &j.stderr

	err := cmd.Run()
	out := domain.StepOutput{
		Stdout: j.stdout.String(),
		Stderr: j.stderr.String(),
	}
	if err == nil {
		return out, nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	e.logger.Error(zerr.With(zerr.Wrap(err, "command failed"), "command", step.Command))

	failure := zerr.With(domain.ErrStepFailed, "command", step.Command)
	failure = zerr.With(failure, "exit_code", exitCode)
	return out, failure
}

// Active returns the labels of the jobs currently in flight, sorted.
func (e *Executor) Active() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	labels := make([]string, 0, len(e.active))
	for _, j := range e.active {
		labels = append(labels, j.label)
	}
	sort.Strings(labels)
	return labels
}

func (e *Executor) register(step *domain.ShellStep) *job {
	seq := e.seq.Add(1)
	j := &job{
		key:   xxhash.Sum64String(fmt.Sprintf("%s|%s|%d", step.Command, step.Dir, seq)),
		label: step.Describe(),
	}

	e.mu.Lock()
	e.active[j.key] = j
	e.mu.Unlock()
	return j
}

func (e *Executor) release(j *job) {
	e.mu.Lock()
	delete(e.active, j.key)
	e.mu.Unlock()
}
