package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/parsnip/internal/core/ports"
	"go.trai.ch/zerr"
)

// Job pairs a target name with the pipeline built for it.
type Job struct {
	Target   string
	Pipeline domain.Pipeline
}

// Runner executes pipelines and is the only component mutating the progress
// tracker. Each pipeline is an independent state machine; a failure in one
// never affects a sibling.
type Runner struct {
	executor  ports.Executor
	tracker   *domain.Tracker
	telemetry ports.Telemetry
}

// NewRunner creates a Runner.
func NewRunner(executor ports.Executor, tracker *domain.Tracker, telemetry ports.Telemetry) *Runner {
	return &Runner{
		executor:  executor,
		tracker:   tracker,
		telemetry: telemetry,
	}
}

// run is the per-pipeline state machine: an index into the step list,
// advanced by exactly one entry point. Steps of one pipeline never overlap;
// the first failure terminates the pipeline with the remaining steps unrun.
type run struct {
	target string
	steps  domain.Pipeline
	index  int

	executor ports.Executor
	vertex   ports.Vertex
}

// advance executes the current step and moves the index forward. done is
// true once every step has run.
func (r *run) advance(ctx context.Context) (done bool, err error) {
	step := r.steps[r.index]

	switch s := step.(type) {
	case *domain.ShellStep:
		err = r.shell(ctx, s)
	case *domain.ActionStep:
		err = r.action(s)
	default:
		err = zerr.With(zerr.New("unknown step kind"), "step", step.Describe())
	}
	if err != nil {
		return false, zerr.With(zerr.With(err, "target", r.target), "step_index", r.index)
	}

	r.index++
	return r.index == len(r.steps), nil
}

func (r *run) shell(ctx context.Context, step *domain.ShellStep) error {
	r.vertex.Info(step.Describe())

	out, err := r.executor.Execute(ctx, step)
	if out.Stdout != "" {
		_, _ = fmt.Fprint(r.vertex.Stdout(), out.Stdout)
	}
	if out.Stderr != "" {
		_, _ = fmt.Fprint(r.vertex.Stderr(), out.Stderr)
	}
	if err != nil {
		if step.ErrHint != "" {
			err = zerr.Wrap(err, step.ErrHint)
		}
		return zerr.With(err, "stderr", out.Stderr)
	}
	return nil
}

// action runs an in-process step inline. A panic inside the action is
// treated as a step failure, not propagated.
func (r *run) action(step *domain.ActionStep) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = zerr.With(zerr.With(domain.ErrStepFailed, "action", step.Name), "panic", fmt.Sprint(rec))
		}
	}()

	r.vertex.Info(step.Describe())
	if err := step.Do(); err != nil {
		return zerr.With(zerr.Wrap(err, "action failed"), "action", step.Name)
	}
	return nil
}

// Run executes one pipeline to its terminal state. The started counter is
// incremented exactly once, before the first step; the terminal transition
// increments finished, plus failed when a step failed.
func (r *Runner) Run(ctx context.Context, target string, pipeline domain.Pipeline) error {
	ctx, vertex := r.telemetry.Record(ctx, target)
	r.tracker.Start()

	st := &run{
		target:   target,
		steps:    pipeline,
		executor: r.executor,
		vertex:   vertex,
	}

	for {
		done, err := st.advance(ctx)
		if err != nil {
			r.tracker.Fail()
			vertex.Complete(err)
			return err
		}
		if done {
			r.tracker.Finish()
			vertex.Complete(nil)
			return nil
		}
	}
}

// RunAll executes a batch of pipelines. In synchronous mode the pipelines
// run one after another in the calling goroutine. In asynchronous mode each
// pipeline runs in its own goroutine with subprocess lifetimes overlapping
// across targets; steps within one pipeline stay strictly ordered, and a
// failing pipeline neither cancels nor delays its siblings.
//
// The returned map holds the terminal error per failed target.
func (r *Runner) RunAll(ctx context.Context, jobs []Job, synchronous bool) map[string]error {
	if synchronous {
		failures := make(map[string]error)
		for _, job := range jobs {
			if err := r.Run(ctx, job.Target, job.Pipeline); err != nil {
				failures[job.Target] = err
			}
		}
		return failures
	}
	return r.runConcurrent(ctx, jobs)
}

func (r *Runner) runConcurrent(ctx context.Context, jobs []Job) map[string]error {
	var (
		mu       sync.Mutex
		failures = make(map[string]error)
	)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, job := range jobs {
		g.Go(func() error {
			if err := r.Run(ctx, job.Target, job.Pipeline); err != nil {
				mu.Lock()
				failures[job.Target] = err
				mu.Unlock()
			}
			// Failures are isolated per pipeline; never abort the group.
			return nil
		})
	}
	_ = g.Wait()
	return failures
}
