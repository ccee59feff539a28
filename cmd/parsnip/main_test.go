package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/parsnip/internal/adapters/telemetry"
	"go.trai.ch/parsnip/internal/app"
	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/parsnip/internal/core/ports/mocks"
	"go.trai.ch/parsnip/internal/engine/pipeline"
	"go.trai.ch/parsnip/internal/engine/revision"
	"go.uber.org/mock/gomock"
)

func testComponents(t *testing.T) *app.Components {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockRegistryLoader(ctrl)
	lockfile := mocks.NewMockLockfileSource(ctrl)
	markers := mocks.NewMockMarkerStore(ctrl)
	toolchain := mocks.NewMockToolchain(ctrl)
	workspace := mocks.NewMockWorkspace(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	tracker := domain.NewTracker()
	noop := telemetry.NewNoOp()
	application := app.New(
		loader,
		revision.NewResolver(lockfile, markers),
		pipeline.NewBuilder(toolchain, workspace, markers),
		pipeline.NewRunner(executor, tracker, noop),
		markers,
		workspace,
		prompter,
		tracker,
		logger,
	)
	return &app.Components{App: application, Logger: logger, Telemetry: noop}
}

func TestRun_Success(t *testing.T) {
	components := testComponents(t)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	components := testComponents(t)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	// Install with no arguments prints usage and succeeds; an unknown
	// subcommand fails.
	exitCode := run(context.Background(), []string{"no-such-command"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
