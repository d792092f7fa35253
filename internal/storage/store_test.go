package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "pokebrowse.db")
	st, err := Open(path)
	require.NoError(t, err)
	return st, path
}

func TestGetMissingKey(t *testing.T) {
	t.Parallel()

	st, _ := openTemp(t)
	defer st.Close()

	_, err := st.Get("pokemon-theme")
	require.ErrorIs(t, err, ErrNoValue)
}

func TestSetGetDelete(t *testing.T) {
	t.Parallel()

	st, _ := openTemp(t)
	defer st.Close()

	require.NoError(t, st.Set("pokemon-theme", "dark"))
	v, err := st.Get("pokemon-theme")
	require.NoError(t, err)
	require.Equal(t, "dark", v)

	require.NoError(t, st.Delete("pokemon-theme"))
	_, err = st.Get("pokemon-theme")
	require.ErrorIs(t, err, ErrNoValue)

	require.NoError(t, st.Delete("never-set"))
}

func TestValuesSurviveReopen(t *testing.T) {
	t.Parallel()

	st, path := openTemp(t)
	require.NoError(t, st.Set("pokemon-theme", "dark"))
	require.NoError(t, st.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get("pokemon-theme")
	require.NoError(t, err)
	require.Equal(t, "dark", v)
}
