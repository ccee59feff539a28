package ports

// Workspace owns the filesystem layout for parser sources and installed
// artifacts: the per-target source cache, the install directory, and the
// query-file association next to each installed artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// SourceDir returns the cache directory a remote source is fetched into.
	SourceDir(target string) string

	// CleanSource removes a target's cached source copy. Best effort: a
	// missing directory is not an error.
	CleanSource(target string) error

	// InstallArtifact moves the built library into the install location.
	InstallArtifact(builtPath, target string) error

	// RemoveArtifact deletes a target's installed library.
	RemoveArtifact(target string) error

	// LinkQueries creates the symbolic association between the target's
	// bundled query files and the install location.
	LinkQueries(sourceDir, target string) error

	// UnlinkQueries removes the query association for a target.
	UnlinkQueries(target string) error
}
