// Package database is a plugin that manages the database of the registry (e.g. health flag and garbage collection).
package database

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/logger"
	"github.com/spf13/viper"
	"go.uber.org/atomic"

	"github.com/iotaledger/assetledger/packages/database"
)

// PluginName is the name of the database plugin.
const PluginName = "Database"

// ErrDatabaseUnhealthy is returned if the database was not shut down properly.
var ErrDatabaseUnhealthy = errors.New("the database is marked as not properly shutdown/corrupted, please delete the database folder and restart")

// Database owns the opened DB and the KVStore that the registry state lives in.
type Database struct {
	db       database.DB
	store    kvstore.KVStore
	shutdown *atomic.Bool
	log      *logger.Logger
}

// New opens the database configured by the given viper instance and verifies its version and health.
func New(v *viper.Viper, log *logger.Logger) (d *Database, err error) {
	d = &Database{shutdown: atomic.NewBool(false), log: log}

	if v.GetBool(CfgDatabaseInMemory) {
		d.db, err = database.NewMemDB()
	} else {
		d.db, err = database.NewDB(v.GetString(CfgDatabaseDir),
			database.WithSyncWrites(v.GetBool(CfgDatabaseSyncWrites)),
			database.WithCompression(v.GetBool(CfgDatabaseCompression)),
		)
	}
	if err != nil {
		return nil, errors.Errorf("unable to open the database, please delete the database folder: %w", err)
	}
	d.store = d.db.NewStore()

	if err = database.CheckDatabaseVersion(d.store); err != nil {
		d.close()
		if errors.Is(err, database.ErrDBVersionIncompatible) {
			return nil, errors.Errorf("the database scheme was updated, please delete the database folder: %w", err)
		}
		return nil, errors.Errorf("failed to check database version: %w", err)
	}

	if dirty := v.GetString(CfgDatabaseDirty); dirty != "" {
		val, parseErr := strconv.ParseBool(dirty)
		switch {
		case parseErr != nil:
			log.Warnf("Invalid %s flag: %s", CfgDatabaseDirty, parseErr)
		case val:
			err = d.MarkUnhealthy()
		default:
			err = d.MarkHealthy()
		}
		if err != nil {
			d.close()
			return nil, err
		}
	}

	unhealthy, err := d.IsUnhealthy()
	if err != nil {
		d.close()
		return nil, err
	}
	if unhealthy {
		d.close()
		return nil, ErrDatabaseUnhealthy
	}

	// run GC up on startup
	d.runGC()

	return d, nil
}

// Store returns the KVStore instance.
func (d *Database) Store() kvstore.KVStore {
	return d.store
}

// Size returns the number of bytes the database occupies on disk.
func (d *Database) Size() int64 {
	return d.db.Size()
}

// Start marks the database as dirty. It is called once the node started up properly, so that a crash before the next
// Shutdown is detected.
func (d *Database) Start() error {
	return d.MarkUnhealthy()
}

// Shutdown runs the GC, marks the database as healthy and closes it. Only the first call has an effect.
func (d *Database) Shutdown() {
	if d.shutdown.Swap(true) {
		return
	}

	d.runGC()
	if err := d.MarkHealthy(); err != nil {
		d.log.Errorf("Failed to mark the database as healthy: %s", err)
	}

	d.log.Infof("Syncing database to disk...")
	d.close()
	d.log.Infof("Syncing database to disk... done")
}

func (d *Database) close() {
	if err := d.db.Close(); err != nil {
		d.log.Errorf("Failed to flush the database: %s", err)
	}
}

func (d *Database) runGC() {
	if !d.db.RequiresGC() {
		return
	}
	d.log.Info("Running database garbage collection...")
	s := time.Now()
	if err := d.db.GC(); err != nil {
		d.log.Warnf("Database garbage collection failed: %s", err)
		return
	}
	d.log.Infof("Database garbage collection done, took %v...", time.Since(s))
}
