// ABOUTME: Tests for the on-disk session store
// ABOUTME: Covers save/load round-trips, corrupt state, and idempotent clear

package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	in := &User{
		Name:            "Asha",
		Email:           "asha@example.com",
		IsAdmin:         false,
		SoilType:        "loamy",
		Climate:         "temperate",
		WaterConditions: "moderate",
	}
	require.NoError(t, s.Save(in, "tok1"))

	out, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, in, out)
	require.Equal(t, "tok1", s.Token())
}

func TestSaveWithoutTokenKeepsExisting(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save(&User{Name: "A"}, "tok1"))
	require.NoError(t, s.Save(&User{Name: "B"}, ""))

	out, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "B", out.Name)
	require.Equal(t, "tok1", s.Token())
}

func TestSaveOverwrites(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save(&User{Name: "A"}, "tok1"))
	require.NoError(t, s.Save(&User{Name: "B", IsAdmin: true}, "tok2"))

	out, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "B", out.Name)
	require.True(t, out.IsAdmin)
	require.Equal(t, "tok2", s.Token())
}

func TestLoadAbsent(t *testing.T) {
	s := NewStore(t.TempDir())

	out, err := s.Load()
	require.NoError(t, err)
	require.Nil(t, out)
	require.Empty(t, s.Token())
}

func TestLoadCorruptedIsAbsent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "userinfo.json"), []byte("not json{"), 0600))

	s := NewStore(dir)
	out, err := s.Load()
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestClearRemovesBothKeys(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	require.NoError(t, s.Save(&User{Name: "A"}, "tok1"))
	require.NoError(t, s.Clear())

	out, err := s.Load()
	require.NoError(t, err)
	require.Nil(t, out)
	require.Empty(t, s.Token())

	_, err = os.Stat(filepath.Join(dir, "userinfo.json"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "token"))
	require.True(t, os.IsNotExist(err))
}

func TestClearEmptyStoreIsNoop(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}

func TestTokenTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("tok1\n"), 0600))

	s := NewStore(dir)
	require.Equal(t, "tok1", s.Token())
}
