package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElvisGalvez/bill-app/internal/localstore"
)

func TestRunLogoutClearsLocalStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "local.db")
	t.Setenv("BILLED_LOCAL_STORAGE", path)
	t.Setenv("LOG_LEVEL", "error")

	require.NoError(t, run("logout", nil), "logout on an empty store")

	storage, err := localstore.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, storage.SetItem(localstore.KeyUser, `{"email":"a@company.tld"}`))
	require.NoError(t, storage.SetItem(localstore.KeyJWT, "token"))
	require.NoError(t, storage.Close())

	require.NoError(t, run("logout", nil))

	storage, err = localstore.OpenSQLite(path)
	require.NoError(t, err)
	defer storage.Close()

	_, ok := storage.GetItem(localstore.KeyUser)
	assert.False(t, ok)
	_, ok = storage.GetItem(localstore.KeyJWT)
	assert.False(t, ok)
}

func TestRunUnknownCommand(t *testing.T) {
	t.Setenv("BILLED_LOCAL_STORAGE", filepath.Join(t.TempDir(), "local.db"))
	t.Setenv("LOG_LEVEL", "error")

	err := run("bogus", nil)
	assert.ErrorContains(t, err, `unknown command "bogus"`)
}
