package ports

import "go.trai.ch/parsnip/internal/core/domain"

// MarkerStore persists one installed marker per target: the revision
// actually built on the last successful pipeline run. The marker is written
// only as a pipeline's final bookkeeping step.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type MarkerStore interface {
	// Revision returns the marker for a target. ok is false when no marker
	// exists.
	Revision(target string) (revision string, ok bool)

	// Write records the revision built for a target.
	Write(target, revision string) error

	// Remove deletes a target's marker.
	Remove(target string) error

	// Installed lists the targets that currently have a marker.
	Installed() ([]string, error)
}

// LockfileSource loads the persisted revision pins. The file is read once
// at first use per run; an absent file is an empty lockfile, not an error.
type LockfileSource interface {
	Load() (*domain.Lockfile, error)
}
