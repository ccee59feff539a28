package revision_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/parsnip/internal/core/domain"
	"go.trai.ch/parsnip/internal/core/ports/mocks"
	"go.trai.ch/parsnip/internal/engine/revision"
	"go.uber.org/mock/gomock"
)

func luaSpec(rev string) *domain.TargetSpec {
	return &domain.TargetSpec{
		Name:     domain.NewInternedString("lua"),
		Source:   "https://example.com/lua",
		Revision: rev,
	}
}

func lockWith(target, rev string) *domain.Lockfile {
	lock := domain.NewLockfile()
	lock.Pins[target] = domain.Pin{Revision: rev}
	return lock
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("explicit revision wins over lockfile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lockfile := mocks.NewMockLockfileSource(ctrl)
		markers := mocks.NewMockMarkerStore(ctrl)

		r := revision.NewResolver(lockfile, markers)
		rev, ok := r.Resolve(luaSpec("feedface"))
		assert.True(t, ok)
		assert.Equal(t, "feedface", rev)
	})

	t.Run("lockfile pin applies when spec is silent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lockfile := mocks.NewMockLockfileSource(ctrl)
		markers := mocks.NewMockMarkerStore(ctrl)
		lockfile.EXPECT().Load().Return(lockWith("lua", "abc123"), nil)

		r := revision.NewResolver(lockfile, markers)
		rev, ok := r.Resolve(luaSpec(""))
		assert.True(t, ok)
		assert.Equal(t, "abc123", rev)
	})

	t.Run("no pin anywhere means unpinned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lockfile := mocks.NewMockLockfileSource(ctrl)
		markers := mocks.NewMockMarkerStore(ctrl)
		lockfile.EXPECT().Load().Return(domain.NewLockfile(), nil)

		r := revision.NewResolver(lockfile, markers)
		_, ok := r.Resolve(luaSpec(""))
		assert.False(t, ok)
	})

	t.Run("lockfile read failure counts as absent pin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lockfile := mocks.NewMockLockfileSource(ctrl)
		markers := mocks.NewMockMarkerStore(ctrl)
		lockfile.EXPECT().Load().Return(nil, errors.New("corrupt lockfile"))

		r := revision.NewResolver(lockfile, markers)
		_, ok := r.Resolve(luaSpec(""))
		assert.False(t, ok)
	})
}

func TestResolver_NeedsUpdate(t *testing.T) {
	tests := []struct {
		name     string
		pinned   string
		marker   string
		hasMark  bool
		expected bool
	}{
		{"unpinned target always rebuilds", "", "", true, true},
		{"no marker means never installed", "abc123", "", false, true},
		{"marker differs from pin", "abc123", "olddead", true, true},
		{"marker matches pin", "abc123", "abc123", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lockfile := mocks.NewMockLockfileSource(ctrl)
			markers := mocks.NewMockMarkerStore(ctrl)

			lock := domain.NewLockfile()
			if tt.pinned != "" {
				lock.Pins["lua"] = domain.Pin{Revision: tt.pinned}
			}
			lockfile.EXPECT().Load().Return(lock, nil)
			if tt.pinned != "" {
				markers.EXPECT().Revision("lua").Return(tt.marker, tt.hasMark)
			}

			r := revision.NewResolver(lockfile, markers)
			assert.Equal(t, tt.expected, r.NeedsUpdate(luaSpec("")))
		})
	}

	t.Run("explicit revision with no lockfile entry and no marker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lockfile := mocks.NewMockLockfileSource(ctrl)
		markers := mocks.NewMockMarkerStore(ctrl)
		markers.EXPECT().Revision("lua").Return("", false)

		r := revision.NewResolver(lockfile, markers)
		spec := luaSpec("abc123")
		assert.True(t, r.NeedsUpdate(spec))

		rev, ok := r.Resolve(spec)
		assert.True(t, ok)
		assert.Equal(t, "abc123", rev)
	})
}
