// ABOUTME: Tests for the session manager state machine
// ABOUTME: Covers rehydration, login/logout cycles, and no-op installs

package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRehydrateAbsent(t *testing.T) {
	m := NewManager(NewStore(t.TempDir()))
	require.Nil(t, m.Current())
}

func TestRehydrateFound(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(&User{Name: "Asha", IsAdmin: true}, "tok1"))

	m := NewManager(store)
	require.NotNil(t, m.Current())
	require.Equal(t, "Asha", m.Current().Name)
	require.True(t, m.Current().IsAdmin)
	require.Equal(t, "tok1", m.Token())
}

func TestRehydrateIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(&User{Name: "Asha"}, "tok1"))

	m := NewManager(store)
	first := m.Current()
	m.rehydrate()
	require.Equal(t, first, m.Current())
}

func TestRehydrateCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "userinfo.json"), []byte("{{"), 0600))

	m := NewManager(NewStore(dir))
	require.Nil(t, m.Current())
}

func TestLoginThenLogout(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	m := NewManager(store)

	require.NoError(t, m.Login(Session{User: &User{Name: "A"}, Token: "tok1"}))
	require.NotNil(t, m.Current())
	require.Equal(t, "A", m.Current().Name)

	// Durable copy converges with the published state
	stored, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "A", stored.Name)
	require.Equal(t, "tok1", m.Token())

	require.NoError(t, m.Logout())
	require.Nil(t, m.Current())

	stored, err = store.Load()
	require.NoError(t, err)
	require.Nil(t, stored)
	require.Empty(t, store.Token())
}

func TestLoginNilUserIsNoop(t *testing.T) {
	store := NewStore(t.TempDir())
	m := NewManager(store)
	require.NoError(t, m.Login(Session{User: &User{Name: "A"}, Token: "tok1"}))

	require.NoError(t, m.Login(Session{}))
	require.Equal(t, "A", m.Current().Name)

	stored, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "A", stored.Name)
	require.Equal(t, "tok1", m.Token())
}

func TestLoginProfileOnly(t *testing.T) {
	m := NewManager(NewStore(t.TempDir()))

	require.NoError(t, m.Login(Session{User: &User{Name: "B"}}))
	require.NotNil(t, m.Current())
	require.Equal(t, "B", m.Current().Name)
	require.Empty(t, m.Token())
}

func TestLoginCyclesIndefinitely(t *testing.T) {
	m := NewManager(NewStore(t.TempDir()))

	require.NoError(t, m.Login(Session{User: &User{Name: "A"}, Token: "t1"}))
	require.NoError(t, m.Logout())
	require.NoError(t, m.Login(Session{User: &User{Name: "B"}, Token: "t2"}))
	require.Equal(t, "B", m.Current().Name)
	require.Equal(t, "t2", m.Token())
}

func TestSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	m1 := NewManager(NewStore(dir))
	require.NoError(t, m1.Login(Session{User: &User{Name: "A", SoilType: "clay"}, Token: "tok1"}))

	m2 := NewManager(NewStore(dir))
	require.NotNil(t, m2.Current())
	require.Equal(t, "A", m2.Current().Name)
	require.Equal(t, "clay", m2.Current().SoilType)
	require.Equal(t, "tok1", m2.Token())
}
