package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/parsnip/internal/core/domain"
)

func spec(name, source string) domain.TargetSpec {
	return domain.TargetSpec{
		Name:   domain.NewInternedString(name),
		Source: source,
	}
}

func TestTargetSpec_IsLocal(t *testing.T) {
	tests := []struct {
		source string
		local  bool
	}{
		{"https://github.com/tree-sitter/tree-sitter-lua", false},
		{"git://example.com/grammar.git", false},
		{"git@github.com:tree-sitter/tree-sitter-go.git", false},
		{"/home/user/grammars/lua", true},
		{"../tree-sitter-lua", true},
		{"grammars/lua", true},
	}
	for _, tt := range tests {
		s := spec("lua", tt.source)
		assert.Equal(t, tt.local, s.IsLocal(), "source %q", tt.source)
	}
}

func TestTargetSpec_Validate(t *testing.T) {
	s := spec("lua", "https://example.com/lua")
	require.NoError(t, s.Validate())

	missingName := spec("", "https://example.com/lua")
	assert.ErrorIs(t, missingName.Validate(), domain.ErrMissingField)

	missingSource := spec("lua", "")
	assert.ErrorIs(t, missingSource.Validate(), domain.ErrMissingField)
}

func TestTargetSpec_SourceFiles(t *testing.T) {
	s := spec("lua", "https://example.com/lua")
	assert.Equal(t, []string{"src/parser.c"}, s.SourceFiles())

	s.Files = []string{"src/parser.c", "src/scanner.c"}
	assert.Equal(t, []string{"src/parser.c", "src/scanner.c"}, s.SourceFiles())
}

func TestRegistry_AddSpec(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, reg.AddSpec(spec("lua", "https://example.com/lua")))

	err := reg.AddSpec(spec("lua", "https://example.com/other"))
	assert.ErrorIs(t, err, domain.ErrTargetAlreadyExists)

	err = reg.AddSpec(spec("all", "https://example.com/all"))
	assert.Error(t, err, "the batch token must not be registrable as a target")
}

func TestRegistry_Expand(t *testing.T) {
	reg := domain.NewRegistry()
	for _, name := range []string{"lua", "rust", "zig", "json"} {
		require.NoError(t, reg.AddSpec(spec(name, "https://example.com/"+name)))
	}
	require.NoError(t, reg.AddTier("stable", []domain.InternedString{
		domain.NewInternedString("lua"),
		domain.NewInternedString("rust"),
	}))
	reg.Ignore(domain.NewInternedString("zig"))

	names := func(specs []domain.TargetSpec) []string {
		out := make([]string, len(specs))
		for i, s := range specs {
			out[i] = s.Name.String()
		}
		return out
	}

	t.Run("all expands to every target sorted", func(t *testing.T) {
		specs, err := reg.Expand([]string{"all"}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"json", "lua", "rust", "zig"}, names(specs))
	})

	t.Run("tier substitutes in place", func(t *testing.T) {
		specs, err := reg.Expand([]string{"json", "stable"}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"json", "lua", "rust"}, names(specs))
	})

	t.Run("duplicates keep their first position", func(t *testing.T) {
		specs, err := reg.Expand([]string{"rust", "stable", "rust"}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"rust", "lua"}, names(specs))
	})

	t.Run("ignore filter applies after expansion", func(t *testing.T) {
		specs, err := reg.Expand([]string{"all"}, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"json", "lua", "rust"}, names(specs))

		// An explicit request without the filter still includes it.
		specs, err = reg.Expand([]string{"zig"}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"zig"}, names(specs))
	})

	t.Run("unknown name is an error", func(t *testing.T) {
		_, err := reg.Expand([]string{"cobol"}, false)
		assert.ErrorIs(t, err, domain.ErrUnknownTarget)
	})
}

func TestRegistry_AddTier_UnknownMember(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, reg.AddSpec(spec("lua", "https://example.com/lua")))

	err := reg.AddTier("stable", []domain.InternedString{
		domain.NewInternedString("lua"),
		domain.NewInternedString("ghost"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownTarget)
}
