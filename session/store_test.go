package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/models"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	return store
}

func TestTokenAbsentByDefault(t *testing.T) {
	store := newStore(t)

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenSaveLoadDelete(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.SaveToken("tok-abc"))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	// overwrite
	require.NoError(t, store.SaveToken("tok-def"))
	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-def", token)

	require.NoError(t, store.DeleteToken())
	token, err = store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	// deleting again is a no-op
	require.NoError(t, store.DeleteToken())
}

func TestProfileRoundTrip(t *testing.T) {
	store := newStore(t)

	user, err := store.Profile()
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, store.SaveProfile(&models.User{ID: 7, Name: "Asha", Email: "asha@example.com"}))

	user, err = store.Profile()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "Asha", user.Name)

	require.NoError(t, store.DeleteProfile())
	user, err = store.Profile()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestTokenSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := OpenStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveToken("durable"))

	reopened, err := OpenStore(path)
	require.NoError(t, err)

	token, err := reopened.Token()
	require.NoError(t, err)
	assert.Equal(t, "durable", token)
}
