package leaked

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/passguard/internal/mocks"
)

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader("password\n  letmein  \n\n\t\nhunter2\r\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("password"))
	assert.True(t, s.Contains("letmein"))
	assert.True(t, s.Contains("hunter2"))
	assert.False(t, s.Contains("Password"))
	assert.False(t, s.Contains(""))
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.False(t, s.Contains("password"))
	assert.Equal(t, 0, s.Len())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leaked.txt")
	require.NoError(t, os.WriteFile(path, []byte("qwerty123\ntrustno1\n"), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("trustno1"))

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestLoadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		st := mocks.NewStorage(t)
		st.On("Exists", mock.Anything, "list.txt").Return(true, nil)
		st.On("Download", mock.Anything, "list.txt").Return(io.NopCloser(strings.NewReader("dragon\nmaster\n")), nil)

		s, err := LoadObject(ctx, st, "list.txt")
		require.NoError(t, err)
		assert.True(t, s.Contains("dragon"))
		assert.True(t, s.Contains("master"))
	})

	t.Run("missing object", func(t *testing.T) {
		st := mocks.NewStorage(t)
		st.On("Exists", mock.Anything, "list.txt").Return(false, nil)

		_, err := LoadObject(ctx, st, "list.txt")
		assert.Error(t, err)
	})

	t.Run("download error", func(t *testing.T) {
		st := mocks.NewStorage(t)
		st.On("Exists", mock.Anything, "list.txt").Return(true, nil)
		st.On("Download", mock.Anything, "list.txt").Return(nil, errors.New("boom"))

		_, err := LoadObject(ctx, st, "list.txt")
		assert.ErrorContains(t, err, "boom")
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	failing := func(context.Context) (*Set, error) { return nil, errors.New("unavailable") }
	empty := func(context.Context) (*Set, error) { return New(), nil }
	good := func(context.Context) (*Set, error) { return New("sunshine"), nil }

	t.Run("first successful source wins", func(t *testing.T) {
		s, err := Load(ctx, failing, empty, good)
		require.NoError(t, err)
		assert.True(t, s.Contains("sunshine"))
		assert.False(t, s.Contains("password"))
	})

	t.Run("fallback when every source fails", func(t *testing.T) {
		s, err := Load(ctx, failing, empty)
		assert.Error(t, err)
		require.NotNil(t, s)
		assert.Equal(t, len(Fallback), s.Len())
		assert.True(t, s.Contains("password"))
	})

	t.Run("fallback without sources", func(t *testing.T) {
		s, err := Load(ctx)
		assert.NoError(t, err)
		assert.True(t, s.Contains("monkey"))
	})
}
