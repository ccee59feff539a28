package toolchain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/parsnip/internal/adapters/toolchain"
	"go.trai.ch/parsnip/internal/core/domain"
)

func lookupFor(available map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if path, ok := available[name]; ok {
			return path, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestToolchain_LookPath(t *testing.T) {
	tc := toolchain.NewWithLookup(lookupFor(map[string]string{
		"git": "/usr/bin/git",
	}))

	path, err := tc.LookPath("git")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/git", path)

	_, err = tc.LookPath("tree-sitter")
	assert.ErrorIs(t, err, domain.ErrToolMissing)
}

func TestToolchain_Compiler_Fallbacks(t *testing.T) {
	t.Setenv("CC", "")

	tc := toolchain.NewWithLookup(lookupFor(map[string]string{
		"gcc": "/usr/bin/gcc",
	}))

	// "cc" is missing; the next fallback wins.
	path, err := tc.Compiler()
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/gcc", path)
}

func TestToolchain_Compiler_CCOverride(t *testing.T) {
	t.Setenv("CC", "my-cc")

	tc := toolchain.NewWithLookup(lookupFor(map[string]string{
		"my-cc": "/opt/bin/my-cc",
		"cc":    "/usr/bin/cc",
	}))

	path, err := tc.Compiler()
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/my-cc", path)
}

func TestToolchain_Compiler_NoneAvailable(t *testing.T) {
	t.Setenv("CC", "")

	tc := toolchain.NewWithLookup(lookupFor(nil))
	_, err := tc.Compiler()
	assert.ErrorIs(t, err, domain.ErrToolMissing)
}

func TestToolchain_Compiler_ResolvedOnce(t *testing.T) {
	t.Setenv("CC", "")

	calls := 0
	tc := toolchain.NewWithLookup(func(name string) (string, error) {
		calls++
		return "/usr/bin/" + name, nil
	})

	path1, err := tc.Compiler()
	require.NoError(t, err)
	path2, err := tc.Compiler()
	require.NoError(t, err)
	assert.Equal(t, path1, path2)
	assert.Equal(t, 1, calls)
}

func TestToolchain_GeneratorABI(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("PARSNIP_ABI", "")
		tc := toolchain.NewWithLookup(lookupFor(nil))
		abi, err := tc.GeneratorABI(context.Background())
		require.NoError(t, err)
		assert.Equal(t, toolchain.DefaultABI, abi)
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("PARSNIP_ABI", "15")
		tc := toolchain.NewWithLookup(lookupFor(nil))
		abi, err := tc.GeneratorABI(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 15, abi)
	})

	t.Run("invalid override", func(t *testing.T) {
		t.Setenv("PARSNIP_ABI", "latest")
		tc := toolchain.NewWithLookup(lookupFor(nil))
		_, err := tc.GeneratorABI(context.Background())
		assert.Error(t, err)
	})

	t.Run("cached across calls", func(t *testing.T) {
		t.Setenv("PARSNIP_ABI", "15")
		tc := toolchain.NewWithLookup(lookupFor(nil))
		_, err := tc.GeneratorABI(context.Background())
		require.NoError(t, err)

		// The value is pinned for the process; later env changes are ignored.
		t.Setenv("PARSNIP_ABI", "16")
		abi, err := tc.GeneratorABI(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 15, abi)
	})
}
