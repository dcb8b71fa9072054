package database

import (
	"github.com/iotaledger/hive.go/kvstore"
)

// DB is the storage engine behind the registry state.
type DB interface {
	// NewStore creates a new KVStore backed by the database.
	NewStore() kvstore.KVStore
	// Close flushes and closes the DB.
	Close() error
	// Size returns the number of bytes the database occupies on disk.
	Size() int64

	// RequiresGC returns whether the database requires a call of GC() to clean deleted items.
	RequiresGC() bool
	// GC runs the garbage collection to clean deleted database items.
	GC() error
}
