// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/parsnip/internal/core/domain"
)

// Executor runs one shell step as a subprocess and reports its captured
// output. Each invocation owns its own output buffers, so concurrent
// pipelines never share a buffer.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute spawns the step's command and blocks until it exits. The
	// captured stdout/stderr are returned in both the success and the
	// failure case; a non-zero exit yields a domain.ErrStepFailed.
	Execute(ctx context.Context, step *domain.ShellStep) (domain.StepOutput, error)
}
