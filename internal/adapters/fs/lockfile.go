package fs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/zerr"
)

// LockfileReader implements ports.LockfileSource over a flat JSON file
// mapping target names to pinned revisions. The file is read once at first
// use; an absent file is an empty lockfile.
type LockfileReader struct {
	path string

	once sync.Once
	lock *domain.Lockfile
	err  error
}

// NewLockfileReader creates a reader for the lockfile at path.
func NewLockfileReader(path string) *LockfileReader {
	return &LockfileReader{path: filepath.Clean(path)}
}

// Load returns the parsed lockfile, reading the file at most once per run.
func (r *LockfileReader) Load() (*domain.Lockfile, error) {
	r.once.Do(func() {
		r.lock, r.err = r.read()
	})
	return r.lock, r.err
}

func (r *LockfileReader) read() (*domain.Lockfile, error) {
	//nolint:gosec // path is cleaned and provided by trusted caller
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewLockfile(), nil
		}
		return nil, zerr.Wrap(err, "failed to read lockfile")
	}

	lock := domain.NewLockfile()
	if len(data) == 0 {
		return lock, nil
	}
	if err := json.Unmarshal(data, &lock.Pins); err != nil {
		return nil, zerr.Wrap(err, "failed to parse lockfile")
	}
	return lock, nil
}
