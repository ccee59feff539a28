// Package revision decides which revision a target should be built at and
// whether a rebuild is needed at all.
package revision

import (
	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/parsnip/internal/core/ports"
)

// Resolver computes the desired revision for a target and compares it
// against the recorded installed revision.
type Resolver struct {
	lockfile ports.LockfileSource
	markers  ports.MarkerStore
}

// NewResolver creates a Resolver over the given lockfile and marker store.
func NewResolver(lockfile ports.LockfileSource, markers ports.MarkerStore) *Resolver {
	return &Resolver{
		lockfile: lockfile,
		markers:  markers,
	}
}

// Resolve returns the desired revision for a target. An explicit revision
// in the install spec wins; otherwise the lockfile pin applies; absence of
// both yields ok == false, meaning unpinned: whatever is fetched is
// accepted. A lockfile read failure counts as an absent pin so that batch
// filtering stays total.
func (r *Resolver) Resolve(spec *domain.TargetSpec) (revision string, ok bool) {
	if spec.Revision != "" {
		return spec.Revision, true
	}
	lock, err := r.lockfile.Load()
	if err != nil {
		return "", false
	}
	return lock.Revision(spec.Name.String())
}

// NeedsUpdate reports whether a target must be rebuilt: true when the
// target is unpinned, when no installed marker exists, or when the marker
// differs from the resolved revision.
func (r *Resolver) NeedsUpdate(spec *domain.TargetSpec) bool {
	want, ok := r.Resolve(spec)
	if !ok {
		return true
	}
	have, ok := r.markers.Revision(spec.Name.String())
	if !ok {
		return true
	}
	return have != want
}
