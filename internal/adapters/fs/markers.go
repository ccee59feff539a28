// Package fs provides the filesystem adapters: the installed-marker store,
// the lockfile reader, and the workspace layout for sources and artifacts.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// markerSuffix is the file extension of per-target revision markers.
const markerSuffix = ".revision"

// MarkerStore implements ports.MarkerStore with one file per target inside
// a directory. Each file holds exactly one line: the revision built on the
// last successful pipeline run.
type MarkerStore struct {
	dir string
}

// NewMarkerStore creates a MarkerStore rooted at dir.
func NewMarkerStore(dir string) *MarkerStore {
	return &MarkerStore{dir: filepath.Clean(dir)}
}

// Revision reads a target's marker. ok is false when the marker is absent
// or unreadable.
func (s *MarkerStore) Revision(target string) (string, bool) {
	data, err := os.ReadFile(s.path(target))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// Write records the revision built for a target.
func (s *MarkerStore) Write(target, revision string) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create marker directory")
	}
	if err := os.WriteFile(s.path(target), []byte(revision+"\n"), 0o644); err != nil { //nolint:gosec // marker files are not sensitive
		return zerr.With(zerr.Wrap(err, "failed to write marker"), "target", target)
	}
	return nil
}

// Remove deletes a target's marker. Removing an absent marker is not an error.
func (s *MarkerStore) Remove(target string) error {
	if err := os.Remove(s.path(target)); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to remove marker"), "target", target)
	}
	return nil
}

// Installed lists the targets with a marker, i.e. the targets tracked as
// installed.
func (s *MarkerStore) Installed() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read marker directory")
	}

	var targets []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, markerSuffix) {
			continue
		}
		targets = append(targets, strings.TrimSuffix(name, markerSuffix))
	}
	return targets, nil
}

func (s *MarkerStore) path(target string) string {
	return filepath.Join(s.dir, target+markerSuffix)
}
