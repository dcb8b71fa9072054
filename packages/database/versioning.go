package database

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/kvstore"
)

const (
	// DBVersion defines the version of the database schema this version of the node supports.
	// everytime there's a breaking change regarding the stored data, this version flag should be adjusted.
	DBVersion = 1
)

var (
	// ErrDBVersionIncompatible is returned when the database has an unexpected version.
	ErrDBVersionIncompatible = errors.New("database version is not compatible. please delete your database folder and restart")

	// the key under which the database version is stored
	dbVersionKey = []byte{PrefixHealth, 0}
)

// CheckDatabaseVersion checks whether the database is compatible with the current schema version.
// It automatically sets the version if the database is new.
func CheckDatabaseVersion(store kvstore.KVStore) error {
	entry, err := store.Get(dbVersionKey)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		// set the version in an empty DB
		return store.Set(dbVersionKey, []byte{DBVersion})
	}
	if err != nil {
		return err
	}
	if len(entry) == 0 {
		return errors.Errorf("no database version was persisted: %w", ErrDBVersionIncompatible)
	}
	if entry[0] != DBVersion {
		return errors.Errorf("%w: supported version: %d, version of database: %d", ErrDBVersionIncompatible, DBVersion, entry[0])
	}
	return nil
}
