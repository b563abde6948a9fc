package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelver/modelver/pkg/defaults"
	"github.com/modelver/modelver/pkg/version"
)

func TestNew(t *testing.T) {
	t.Run("creates missing root directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "models")

		s, err := New(dir)
		require.NoError(t, err)
		require.NotNil(t, s)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, dir, s.Root())
	})

	t.Run("empty path rejected", func(t *testing.T) {
		_, err := New("")
		require.Error(t, err)
	})
}

func TestHistoryEmpty(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	history, err := s.History()
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = s.Latest()
	require.ErrorIs(t, err, ErrNoVersions)
}

func TestHistorySkipsNonVersionEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "1.0.0"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "2.0.0"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "not-a-version"), 0o755))
	// Plain files are never version entries.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644))

	s, err := New(dir)
	require.NoError(t, err)

	history, err := s.History()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "1.0.0", history[0].String())
	assert.Equal(t, "2.0.0", history[1].String())

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", latest.String())
}

func TestHistoryStrictMode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "1.0.0"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "not-a-version"), 0o755))

	s, err := New(dir, WithStrict())
	require.NoError(t, err)

	_, err = s.History()
	require.ErrorIs(t, err, ErrUnrecognizedEntry)
	require.ErrorIs(t, err, version.ErrInvalidVersion)
}

func TestHistoryAscendingOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2.0.0", "1.0.0-alpha", "1.0.0", "0.1.0"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}

	s, err := New(dir)
	require.NoError(t, err)

	history, err := s.History()
	require.NoError(t, err)

	got := make([]string, len(history))
	for i, v := range history {
		got[i] = v.String()
	}
	assert.Equal(t, []string{"0.1.0", "1.0.0-alpha", "1.0.0", "2.0.0"}, got)
}

func TestAdd(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	v, err := s.AddString("1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v.String())

	info, err := os.Stat(filepath.Join(dir, "1.0.0"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", latest.String())
}

func TestAddDuplicate(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	_, err = s.AddString("1.0.0")
	require.NoError(t, err)

	_, err = s.AddString("1.0.0")
	require.ErrorIs(t, err, ErrVersionExists)

	// The failed add must leave the directory untouched.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAddDuplicateIgnoresBuildMetadata(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.AddString("1.0.0+linux")
	require.NoError(t, err)

	_, err = s.AddString("1.0.0+darwin")
	require.ErrorIs(t, err, ErrVersionExists)
}

func TestAddInvalidVersion(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	_, err = s.AddString("not-a-version")
	require.ErrorIs(t, err, version.ErrInvalidVersion)

	// No directory may be created on a validation failure.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAddOlderThanLatest(t *testing.T) {
	// Add enforces duplicate rejection only, not monotonicity: backfilling
	// an older version is allowed.
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.AddString("2.0.0")
	require.NoError(t, err)
	_, err = s.AddString("1.0.0")
	require.NoError(t, err)

	history, err := s.History()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "1.0.0", history[0].String())

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", latest.String())
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	v, err := s.Init()
	require.NoError(t, err)
	assert.Equal(t, defaults.InitialVersion, v.String())

	info, err := os.Stat(filepath.Join(dir, defaults.InitialVersion))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Initializing twice collides with the seeded version.
	_, err = s.Init()
	require.ErrorIs(t, err, ErrVersionExists)
}

func TestNextAndCreate(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Next(version.KindMinor)
	require.ErrorIs(t, err, ErrNoVersions)

	_, err = s.AddString("1.2.3")
	require.NoError(t, err)

	next, err := s.Next(version.KindMinor)
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", next.String())

	// Next must not mutate the store.
	history, err := s.History()
	require.NoError(t, err)
	assert.Len(t, history, 1)

	created, err := s.Create(version.KindMajor)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", created.String())

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", latest.String())
}

func TestRefresh(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	history, err := s.History()
	require.NoError(t, err)
	assert.Empty(t, history)

	// Simulate an out-of-band writer; the cache does not see it until
	// Refresh drops it.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "3.0.0"), 0o755))

	history, err = s.History()
	require.NoError(t, err)
	assert.Empty(t, history)

	s.Refresh()

	history, err = s.History()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "3.0.0", history[0].String())
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	v := version.MustParse("1.2.3-rc.1")
	assert.Equal(t, filepath.Join(dir, "1.2.3-rc.1"), s.Path(v))
}
