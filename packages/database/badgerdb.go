package database

import (
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v2"
	"github.com/dgraph-io/badger/v2/options"
	"github.com/iotaledger/hive.go/kvstore"
	badgerstore "github.com/iotaledger/hive.go/kvstore/badger"
)

const valueLogGCDiscardRatio = 0.1

// region Option ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Option configures the badger instance opened by NewDB.
type Option func(*badger.Options)

// WithSyncWrites configures whether every commit is synced to disk before it returns.
func WithSyncWrites(syncWrites bool) Option {
	return func(opts *badger.Options) {
		opts.SyncWrites = syncWrites
	}
}

// WithCompression configures whether the tables of the database are compressed with zstd.
func WithCompression(enabled bool) Option {
	return func(opts *badger.Options) {
		if enabled {
			opts.Compression = options.ZSTD
			return
		}
		opts.Compression = options.None
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region badgerDB /////////////////////////////////////////////////////////////////////////////////////////////////////

type badgerDB struct {
	*badger.DB
}

// NewDB returns a new persisting DB object stored in dirname.
func NewDB(dirname string, opts ...Option) (DB, error) {
	if err := os.MkdirAll(dirname, 0o700); err != nil {
		return nil, errors.Errorf("could not create DB directory: %w", err)
	}

	badgerOpts := badger.DefaultOptions(dirname)
	badgerOpts.Logger = nil
	badgerOpts.SyncWrites = true
	badgerOpts.TableLoadingMode = options.MemoryMap
	badgerOpts.ValueLogLoadingMode = options.MemoryMap
	badgerOpts.CompactL0OnClose = true
	badgerOpts.VerifyValueChecksum = false
	badgerOpts.Compression = options.None
	for _, opt := range opts {
		opt(&badgerOpts)
	}

	if runtime.GOOS == "windows" {
		badgerOpts = badgerOpts.WithTruncate(true)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, errors.Errorf("could not open DB: %w", err)
	}

	return &badgerDB{DB: db}, nil
}

// NewStore returns a KVStore that writes through to the badger instance.
func (db *badgerDB) NewStore() kvstore.KVStore {
	return badgerstore.New(db.DB)
}

// Close closes a DB. It's crucial to call it to ensure all the pending updates make their way to disk.
func (db *badgerDB) Close() error {
	return db.DB.Close()
}

// Size returns the size of the LSM tree plus the size of the value log in bytes.
func (db *badgerDB) Size() int64 {
	lsm, vlog := db.DB.Size()
	return lsm + vlog
}

func (db *badgerDB) RequiresGC() bool {
	return true
}

func (db *badgerDB) GC() error {
	if err := db.RunValueLogGC(valueLogGCDiscardRatio); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		return err
	}
	// trigger the go garbage collector to release the used memory
	runtime.GC()
	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
