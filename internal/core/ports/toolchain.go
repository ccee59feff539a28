package ports

import "context"

// Toolchain locates the external tools pipelines depend on. Lookups are
// fail-fast prerequisites: they run before any subprocess is spawned for a
// target.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// LookPath resolves an executable name to an absolute path, or returns
	// an error when it is not executable from PATH.
	LookPath(name string) (string, error)

	// Compiler resolves the C compiler: the CC environment override first,
	// then a fixed fallback list of common compilers. Returns
	// domain.ErrToolMissing when none is executable.
	Compiler() (string, error)

	// GeneratorABI returns the grammar generator's ABI version. The value
	// is resolved once per process and cached for reuse across targets.
	GeneratorABI(ctx context.Context) (int, error)
}
