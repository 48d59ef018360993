// Package storage is the contract's key-value storage: a KVStore backed by
// cometbft-db and typed singleton items on top of it.
package storage

import (
	"fmt"

	dbm "github.com/cometbft/cometbft-db"
)

// KVStore is the storage a contract sees. Errors of the backing database
// are not recoverable by a contract, so implementations panic on them.
type KVStore interface {
	Get(key []byte) []byte
	Set(key, value []byte)
	Delete(key []byte)
	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	// Iterator must be closed by caller.
	Iterator(start, end []byte) dbm.Iterator
	// ReverseIterator over a domain of keys in descending order. End is exclusive.
	ReverseIterator(start, end []byte) dbm.Iterator
}

// Store adapts a cometbft-db database to KVStore.
type Store struct {
	db dbm.DB
}

var _ KVStore = (*Store)(nil)

// NewMemStore returns a Store kept in memory. Nothing needs to be closed.
func NewMemStore() *Store {
	return &Store{db: dbm.NewMemDB()}
}

// Open opens (or creates) the database name in dir with the given backend.
// An empty backend means goleveldb.
func Open(name string, backend dbm.BackendType, dir string) (*Store, error) {
	if backend == "" {
		backend = dbm.GoLevelDBBackend
	}
	db, err := dbm.NewDB(name, backend, dir)
	if err != nil {
		return nil, fmt.Errorf("open %s database %q in %s: %w", backend, name, dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get wraps the underlying DB's Get method panicing on error.
func (s *Store) Get(key []byte) []byte {
	v, err := s.db.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Set wraps the underlying DB's Set method panicing on error.
func (s *Store) Set(key, value []byte) {
	if err := s.db.Set(key, value); err != nil {
		panic(err)
	}
}

// Delete wraps the underlying DB's Delete method panicing on error.
func (s *Store) Delete(key []byte) {
	if err := s.db.Delete(key); err != nil {
		panic(err)
	}
}

// Iterator wraps the underlying DB's Iterator method panicing on error.
func (s *Store) Iterator(start, end []byte) dbm.Iterator {
	iter, err := s.db.Iterator(start, end)
	if err != nil {
		panic(err)
	}
	return iter
}

// ReverseIterator wraps the underlying DB's ReverseIterator method panicing on error.
func (s *Store) ReverseIterator(start, end []byte) dbm.Iterator {
	iter, err := s.db.ReverseIterator(start, end)
	if err != nil {
		panic(err)
	}
	return iter
}

// Entry is one raw key/value pair.
type Entry struct {
	Key   []byte
	Value []byte
}

// Dump returns every pair in the store in key order.
func Dump(store KVStore) []Entry {
	iter := store.Iterator(nil, nil)
	defer iter.Close()

	var entries []Entry
	for ; iter.Valid(); iter.Next() {
		entries = append(entries, Entry{Key: iter.Key(), Value: iter.Value()})
	}
	return entries
}
