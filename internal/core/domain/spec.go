// Package domain contains the core domain models for parser lifecycle management.
package domain

import (
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// AllTargets is the reserved batch-request token that expands to every
// registered target.
const AllTargets = "all"

// TargetSpec describes one installable parser. It is resolved once at the
// start of a batch and never mutated afterwards.
type TargetSpec struct {
	// Name is the target identifier (e.g. "lua", "rust").
	Name InternedString

	// Source is either a remote repository URL or a local filesystem path.
	Source string

	// Revision optionally pins the revision to build. When set it takes
	// precedence over any lockfile entry.
	Revision string

	// Generate requests running the grammar generator before compiling.
	Generate bool

	// Bootstrap requests a package-manager bootstrap before generation.
	Bootstrap bool

	// Location is a subpath within the source tree holding the grammar,
	// for repositories that bundle several grammars.
	Location string

	// Files lists the C sources to compile, relative to the working
	// directory. Empty means the default parser source.
	Files []string
}

// DefaultSources is the compile file list used when a spec declares none.
var DefaultSources = []string{"src/parser.c"}

// SourceFiles returns the spec's compile file list, falling back to
// DefaultSources.
func (s *TargetSpec) SourceFiles() []string {
	if len(s.Files) == 0 {
		return DefaultSources
	}
	return s.Files
}

// IsLocal reports whether the source points at the local filesystem rather
// than a remote repository.
func (s *TargetSpec) IsLocal() bool {
	return !strings.Contains(s.Source, "://") && !strings.HasPrefix(s.Source, "git@")
}

// Validate checks that the spec carries the fields every pipeline needs.
func (s *TargetSpec) Validate() error {
	if s.Name.String() == "" {
		return zerr.With(ErrMissingField, "field", "name")
	}
	if s.Source == "" {
		return zerr.With(zerr.With(ErrMissingField, "field", "source"), "target", s.Name.String())
	}
	return nil
}

// Registry holds every known target plus the tier aliases and the ignore
// list. It is loaded once per run and read-only afterwards.
type Registry struct {
	specs   map[InternedString]TargetSpec
	tiers   map[string][]InternedString
	ignored map[InternedString]bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		specs:   make(map[InternedString]TargetSpec),
		tiers:   make(map[string][]InternedString),
		ignored: make(map[InternedString]bool),
	}
}

// AddSpec registers a target. The reserved token "all" is rejected, as is a
// duplicate name.
func (r *Registry) AddSpec(spec TargetSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if spec.Name.String() == AllTargets {
		return zerr.With(zerr.New("target name is reserved"), "target", AllTargets)
	}
	if _, exists := r.specs[spec.Name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", spec.Name.String())
	}
	r.specs[spec.Name] = spec
	return nil
}

// AddTier registers a named group alias. Every member must already be known.
func (r *Registry) AddTier(name string, members []InternedString) error {
	for _, m := range members {
		if _, ok := r.specs[m]; !ok {
			return zerr.With(zerr.With(ErrUnknownTarget, "tier", name), "target", m.String())
		}
	}
	r.tiers[name] = members
	return nil
}

// Ignore marks a target as excluded when a batch asks for the ignore filter.
func (r *Registry) Ignore(name InternedString) {
	r.ignored[name] = true
}

// Spec returns the spec for a concrete target name.
func (r *Registry) Spec(name string) (TargetSpec, error) {
	spec, ok := r.specs[NewInternedString(name)]
	if !ok {
		return TargetSpec{}, zerr.With(ErrUnknownTarget, "target", name)
	}
	return spec, nil
}

// Names returns all registered target names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name.String())
	}
	sort.Strings(names)
	return names
}

// Expand resolves a batch request into concrete target specs. The token
// "all" expands to every registered target; a tier alias is substituted in
// place by its members; a concrete name maps to itself. When excludeIgnored
// is set the ignore list is applied after expansion. Duplicates keep their
// first position.
func (r *Registry) Expand(requested []string, excludeIgnored bool) ([]TargetSpec, error) {
	var names []InternedString
	for _, req := range requested {
		switch {
		case req == AllTargets:
			for _, n := range r.Names() {
				names = append(names, NewInternedString(n))
			}
		case r.tiers[req] != nil:
			names = append(names, r.tiers[req]...)
		default:
			name := NewInternedString(req)
			if _, ok := r.specs[name]; !ok {
				return nil, zerr.With(ErrUnknownTarget, "target", req)
			}
			names = append(names, name)
		}
	}

	seen := make(map[InternedString]bool, len(names))
	specs := make([]TargetSpec, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if excludeIgnored && r.ignored[name] {
			continue
		}
		specs = append(specs, r.specs[name])
	}
	return specs, nil
}
