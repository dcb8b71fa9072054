package database

import (
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
)

// memDB keeps the registry state in memory only. It is used for tests and for nodes started with database.inMemory.
type memDB struct {
	store kvstore.KVStore
}

// NewMemDB returns a new in-memory (not persisted) DB object.
func NewMemDB() (DB, error) {
	return &memDB{store: mapdb.NewMapDB()}, nil
}

// NewStore returns the shared in-memory store; all stores of a memDB see the same data.
func (db *memDB) NewStore() kvstore.KVStore {
	return db.store
}

// Close drops the content of the store.
func (db *memDB) Close() error {
	return db.store.Clear()
}

// Size is always 0 since nothing is written to disk.
func (db *memDB) Size() int64 {
	return 0
}

func (db *memDB) RequiresGC() bool {
	return false
}

func (db *memDB) GC() error {
	return nil
}
