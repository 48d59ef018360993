package storage

import (
	"errors"
	"testing"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Label string
	Count int32
	Tags  []string
}

func TestItem(t *testing.T) {
	stores := map[string]func(t *testing.T) KVStore{
		"memdb": func(t *testing.T) KVStore { return NewMemStore() },
		"goleveldb": func(t *testing.T) KVStore {
			s, err := Open("items", dbm.GoLevelDBBackend, t.TempDir())
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)
			item := NewItem[record]("record")

			_, err := item.Load(store)
			require.ErrorIs(t, err, ErrNotFound)
			_, ok, err := item.MayLoad(store)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.False(t, item.Exists(store))

			want := record{Label: "mygroup", Count: -4, Tags: []string{"a", "b"}}
			require.NoError(t, item.Save(store, want))
			assert.True(t, item.Exists(store))

			got, err := item.Load(store)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			item.Remove(store)
			_, err = item.Load(store)
			require.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestItemUpdate(t *testing.T) {
	store := NewMemStore()
	counter := NewItem[int32]("count")

	_, err := counter.Update(store, func(n int32) (int32, error) { return n + 1, nil })
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, counter.Save(store, 7))
	n, err := counter.Update(store, func(n int32) (int32, error) { return n + 1, nil })
	require.NoError(t, err)
	assert.Equal(t, int32(8), n)

	boom := errors.New("boom")
	_, err = counter.Update(store, func(int32) (int32, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	n, err = counter.Load(store)
	require.NoError(t, err)
	assert.Equal(t, int32(8), n, "failed update must not write")
}

func TestItemDecodeError(t *testing.T) {
	store := NewMemStore()
	store.Set([]byte("flag"), []byte{0xc1}) // never used in msgpack
	_, err := NewItem[bool]("flag").Load(store)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
