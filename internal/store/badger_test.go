package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBadgerStoreRoundTrip(t *testing.T) {
	st, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	_, ok, err := st.Get("auth_token")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, st.Put("auth_token", []byte("t1")))

	value, ok, err := st.Get("auth_token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("t1"), value)

	// full-value overwrite
	require.NoError(t, st.Put("auth_token", []byte("t2")))
	value, ok, err = st.Get("auth_token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("t2"), value)

	require.NoError(t, st.Delete("auth_token"))
	_, ok, err = st.Get("auth_token")
	require.NoError(t, err)
	require.False(t, ok)

	// deleting an absent key is not an error
	require.NoError(t, st.Delete("auth_token"))
}

func TestBadgerStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	st, err := OpenBadger(dir)
	require.NoError(t, err)
	require.NoError(t, st.Put("auth_user", []byte(`{"id":"1"}`)))
	require.NoError(t, st.Close())

	reopened, err := OpenBadger(dir)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("auth_user")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{"id":"1"}`), value)
}
