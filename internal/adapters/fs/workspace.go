package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Workspace implements ports.Workspace. Layout under the root directory:
//
//	sources/<target>/    per-target fetch cache for remote sources
//	parser/<target>.so   installed artifacts
//	queries/<target>     symbolic link to the target's bundled query files
//
// Query sources live outside the root, next to the registry configuration.
type Workspace struct {
	root       string
	queriesSrc string
}

// NewWorkspace creates a Workspace rooted at root, linking queries from
// queriesSrc (a directory holding one subdirectory per target).
func NewWorkspace(root, queriesSrc string) *Workspace {
	return &Workspace{
		root:       filepath.Clean(root),
		queriesSrc: filepath.Clean(queriesSrc),
	}
}

// SourceDir returns the cache directory a remote source is fetched into.
func (w *Workspace) SourceDir(target string) string {
	return filepath.Join(w.root, "sources", target)
}

// CleanSource removes a target's cached source copy. A missing directory is
// not an error.
func (w *Workspace) CleanSource(target string) error {
	if err := os.RemoveAll(w.SourceDir(target)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clean source cache"), "target", target)
	}
	return nil
}

// ArtifactPath returns the install location of a target's library.
func (w *Workspace) ArtifactPath(target string) string {
	return filepath.Join(w.root, "parser", target+".so")
}

// InstallArtifact moves the built library into the install location. Rename
// first; fall back to a copy when source and destination sit on different
// filesystems.
func (w *Workspace) InstallArtifact(builtPath, target string) error {
	dest := w.ArtifactPath(target)
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create install directory")
	}
	if err := os.Rename(builtPath, dest); err == nil {
		return nil
	}
	if err := copyFile(builtPath, dest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to install artifact"), "target", target)
	}
	return nil
}

// RemoveArtifact deletes a target's installed library.
func (w *Workspace) RemoveArtifact(target string) error {
	if err := os.Remove(w.ArtifactPath(target)); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to remove artifact"), "target", target)
	}
	return nil
}

// QueryLinkPath returns the install-side location of a target's query link.
func (w *Workspace) QueryLinkPath(target string) string {
	return filepath.Join(w.root, "queries", target)
}

// LinkQueries creates the symbolic association between the target's bundled
// query files and the install location. A target without bundled queries is
// left without a link; that is not a failure.
func (w *Workspace) LinkQueries(_, target string) error {
	src := filepath.Join(w.queriesSrc, target)
	if _, err := os.Stat(src); err != nil {
		return nil
	}

	link := w.QueryLinkPath(target)
	if err := os.MkdirAll(filepath.Dir(link), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create queries directory")
	}
	if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to replace query link"), "target", target)
	}
	if err := os.Symlink(src, link); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to link queries"), "target", target)
	}
	return nil
}

// UnlinkQueries removes the query association for a target.
func (w *Workspace) UnlinkQueries(target string) error {
	if err := os.Remove(w.QueryLinkPath(target)); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, "failed to unlink queries"), "target", target)
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src) //nolint:gosec // paths come from the workspace layout
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // artifact is world-readable
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
