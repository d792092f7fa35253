package theme

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pokebrowse/internal/storage"
)

type mapKV struct {
	values  map[string]string
	failSet bool
}

func (m *mapKV) Get(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", storage.ErrNoValue
	}
	return v, nil
}

func (m *mapKV) Set(key, value string) error {
	if m.failSet {
		return errors.New("read-only")
	}
	m.values[key] = value
	return nil
}

func TestParse(t *testing.T) {
	t.Parallel()

	got, err := Parse(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, got)

	_, err = Parse("sepia")
	require.ErrorIs(t, err, ErrUnknownTheme)
}

func TestRestoreDefaultsToLight(t *testing.T) {
	t.Parallel()

	var applied []Theme
	s := New(&mapKV{values: map[string]string{}}, func(t Theme) { applied = append(applied, t) }, nil)

	assert.Equal(t, Light, s.Restore())
	assert.Equal(t, []Theme{Light}, applied)
}

func TestRestoreIgnoresGarbage(t *testing.T) {
	t.Parallel()

	s := New(&mapKV{values: map[string]string{Key: "neon"}}, nil, nil)
	assert.Equal(t, Light, s.Restore())
}

func TestToggleFlipsPersistsAndApplies(t *testing.T) {
	t.Parallel()

	kv := &mapKV{values: map[string]string{}}
	var applied []Theme
	s := New(kv, func(t Theme) { applied = append(applied, t) }, nil)
	s.Restore()

	assert.Equal(t, Dark, s.Toggle())
	assert.Equal(t, "dark", kv.values[Key])
	assert.Equal(t, []Theme{Light, Dark}, applied)

	assert.Equal(t, Light, s.Toggle())
	assert.Equal(t, "light", kv.values[Key])
}

func TestPersistFailureIsSilent(t *testing.T) {
	t.Parallel()

	s := New(&mapKV{values: map[string]string{}, failSet: true}, nil, nil)
	require.NotPanics(t, func() { s.Toggle() })
	assert.Equal(t, Dark, s.Theme())
}

func TestNilKVStillToggles(t *testing.T) {
	t.Parallel()

	s := New(nil, nil, nil)
	assert.Equal(t, Light, s.Restore())
	assert.Equal(t, Dark, s.Toggle())
}

func TestDarkSurvivesRestartWithBoltStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pokebrowse.db")

	st, err := storage.Open(path)
	require.NoError(t, err)
	s := New(st, nil, nil)
	require.Equal(t, Light, s.Restore())
	require.Equal(t, Dark, s.Toggle())
	require.NoError(t, st.Close())

	reopened, err := storage.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get(Key)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
	assert.Equal(t, Dark, New(reopened, nil, nil).Restore())
}

func TestToggleLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Dark Mode", Light.ToggleLabel())
	assert.Equal(t, "Light Mode", Dark.ToggleLabel())
	assert.Equal(t, Dark, Light.Opposite())
}
