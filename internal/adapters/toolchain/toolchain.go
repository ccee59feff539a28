// Package toolchain locates external tools and resolves the generator ABI.
package toolchain

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultABI is the generator ABI used when no override is set.
const DefaultABI = 14

// abiEnv overrides the generator ABI version.
const abiEnv = "PARSNIP_ABI"

// compilerFallbacks is the priority list tried after the CC override.
var compilerFallbacks = []string{"cc", "gcc", "clang", "cl", "zig"}

// Toolchain implements ports.Toolchain with os/exec lookups. The compiler
// and the ABI version are resolved once per process and reused across
// targets.
type Toolchain struct {
	lookPath func(string) (string, error)

	compilerOnce sync.Once
	compiler     string
	compilerErr  error

	abiOnce sync.Once
	abi     int
	abiErr  error
}

// New creates a Toolchain using exec.LookPath.
func New() *Toolchain {
	return &Toolchain{lookPath: exec.LookPath}
}

// NewWithLookup creates a Toolchain with a custom lookup, for tests.
func NewWithLookup(lookPath func(string) (string, error)) *Toolchain {
	return &Toolchain{lookPath: lookPath}
}

// LookPath resolves an executable name through PATH.
func (t *Toolchain) LookPath(name string) (string, error) {
	path, err := t.lookPath(name)
	if err != nil {
		return "", zerr.With(domain.ErrToolMissing, "tool", name)
	}
	return path, nil
}

// Compiler resolves the C compiler: the CC environment override first, then
// the fixed fallback list.
func (t *Toolchain) Compiler() (string, error) {
	t.compilerOnce.Do(func() {
		candidates := compilerFallbacks
		if cc := os.Getenv("CC"); cc != "" {
			candidates = append([]string{cc}, candidates...)
		}
		for _, candidate := range candidates {
			if path, err := t.lookPath(candidate); err == nil {
				t.compiler = path
				return
			}
		}
		t.compilerErr = zerr.With(domain.ErrToolMissing, "tool", "compiler")
	})
	return t.compiler, t.compilerErr
}

// GeneratorABI returns the grammar generator ABI version: the PARSNIP_ABI
// override when set, DefaultABI otherwise. Resolved once per process.
func (t *Toolchain) GeneratorABI(_ context.Context) (int, error) {
	t.abiOnce.Do(func() {
		t.abi = DefaultABI
		raw := os.Getenv(abiEnv)
		if raw == "" {
			return
		}
		abi, err := strconv.Atoi(raw)
		if err != nil {
			t.abiErr = zerr.With(zerr.Wrap(err, "invalid ABI override"), "value", raw)
			return
		}
		t.abi = abi
	})
	return t.abi, t.abiErr
}
