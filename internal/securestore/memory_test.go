package securestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// absent key: (nil, nil)
	v, err := s.GetItem(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, v)

	// set + get
	require.NoError(t, s.SetItem(ctx, "k", []byte("v1")))
	v, err = s.GetItem(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)

	// upsert
	require.NoError(t, s.SetItem(ctx, "k", []byte("v2")))
	v, err = s.GetItem(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	// idempotent delete
	require.NoError(t, s.DeleteItem(ctx, "k"))
	require.NoError(t, s.DeleteItem(ctx, "k"))
	v, err = s.GetItem(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryStore_SetItems(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SetItems(ctx, map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}))
	require.Equal(t, 2, s.Len())
}

func TestMemoryStore_GetCopiesValue(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "k", []byte("abc")))

	v, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	v[0] = 'X'

	again, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again, "mutating a returned value must not affect the store")
}
