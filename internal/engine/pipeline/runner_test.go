package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/parsnip/internal/adapters/telemetry"
	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/parsnip/internal/core/ports/mocks"
	"go.trai.ch/parsnip/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func shellStep(cmd string) *domain.ShellStep {
	return &domain.ShellStep{Command: cmd, Info: "running " + cmd}
}

func TestRunner_Run_AllStepsSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tracker := domain.NewTracker()
	runner := pipeline.NewRunner(executor, tracker, telemetry.NewNoOp())

	var actionRan bool
	steps := domain.Pipeline{
		shellStep("fetch"),
		&domain.ActionStep{Name: "bookkeeping", Do: func() error { actionRan = true; return nil }},
		shellStep("compile"),
	}

	gomock.InOrder(
		executor.EXPECT().Execute(gomock.Any(), steps[0]).Return(domain.StepOutput{Stdout: "ok\n"}, nil),
		executor.EXPECT().Execute(gomock.Any(), steps[2]).Return(domain.StepOutput{}, nil),
	)

	err := runner.Run(context.Background(), "lua", steps)
	require.NoError(t, err)
	assert.True(t, actionRan)

	started, finished, failed := tracker.Counts()
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, finished)
	assert.Zero(t, failed)
}

func TestRunner_Run_FailureStopsThePipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tracker := domain.NewTracker()
	runner := pipeline.NewRunner(executor, tracker, telemetry.NewNoOp())

	var tailRan bool
	steps := domain.Pipeline{
		shellStep("clean"),
		shellStep("fetch"),
		&domain.ShellStep{Command: "compile", ErrHint: "parser compilation failed"},
		&domain.ActionStep{Name: "install", Do: func() error { tailRan = true; return nil }},
		shellStep("clean"),
	}

	gomock.InOrder(
		executor.EXPECT().Execute(gomock.Any(), steps[0]).Return(domain.StepOutput{}, nil),
		executor.EXPECT().Execute(gomock.Any(), steps[1]).Return(domain.StepOutput{}, nil),
		executor.EXPECT().Execute(gomock.Any(), steps[2]).
			Return(domain.StepOutput{Stderr: "cc: no such file\n"}, domain.ErrStepFailed),
	)

	err := runner.Run(context.Background(), "lua", steps)
	require.ErrorIs(t, err, domain.ErrStepFailed)

	// Steps after the failing one never run.
	assert.False(t, tailRan)

	started, finished, failed := tracker.Counts()
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, finished)
	assert.Equal(t, 1, failed)
}

func TestRunner_Run_ActionPanicIsAStepFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tracker := domain.NewTracker()
	runner := pipeline.NewRunner(executor, tracker, telemetry.NewNoOp())

	steps := domain.Pipeline{
		&domain.ActionStep{Name: "explode", Do: func() error { panic("boom") }},
	}

	err := runner.Run(context.Background(), "lua", steps)
	require.ErrorIs(t, err, domain.ErrStepFailed)

	_, _, failed := tracker.Counts()
	assert.Equal(t, 1, failed)
}

func TestRunner_RunAll_FailureIsolation(t *testing.T) {
	jobs := func() []pipeline.Job {
		return []pipeline.Job{
			{Target: "lua", Pipeline: domain.Pipeline{
				&domain.ActionStep{Name: "ok", Do: func() error { return nil }},
			}},
			{Target: "rust", Pipeline: domain.Pipeline{
				&domain.ActionStep{Name: "broken", Do: func() error { return domain.ErrStepFailed }},
			}},
			{Target: "zig", Pipeline: domain.Pipeline{
				&domain.ActionStep{Name: "ok", Do: func() error { return nil }},
			}},
		}
	}

	for _, synchronous := range []bool{true, false} {
		name := "concurrent"
		if synchronous {
			name = "synchronous"
		}
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			executor := mocks.NewMockExecutor(ctrl)
			tracker := domain.NewTracker()
			runner := pipeline.NewRunner(executor, tracker, telemetry.NewNoOp())

			failures := runner.RunAll(context.Background(), jobs(), synchronous)

			// One failure, and it never touches its siblings.
			require.Len(t, failures, 1)
			assert.ErrorIs(t, failures["rust"], domain.ErrStepFailed)

			started, finished, failed := tracker.Counts()
			assert.Equal(t, 3, started)
			assert.Equal(t, 3, finished)
			assert.Equal(t, 1, failed)
		})
	}
}

func TestRunner_RunAll_Concurrent_ManyJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	tracker := domain.NewTracker()
	runner := pipeline.NewRunner(executor, tracker, telemetry.NewNoOp())

	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(domain.StepOutput{}, nil).AnyTimes()

	var jobs []pipeline.Job
	for _, name := range []string{"lua", "rust", "zig", "json", "toml", "yaml", "html", "css"} {
		jobs = append(jobs, pipeline.Job{Target: name, Pipeline: domain.Pipeline{
			shellStep("fetch"),
			shellStep("compile"),
		}})
	}

	failures := runner.RunAll(context.Background(), jobs, false)
	assert.Empty(t, failures)

	started, finished, failed := tracker.Counts()
	assert.Equal(t, len(jobs), started)
	assert.Equal(t, len(jobs), finished)
	assert.Zero(t, failed)
	assert.True(t, tracker.Idle())
}
