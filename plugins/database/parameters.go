package database

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgDatabaseDir defines the directory the badger files are kept in.
	CfgDatabaseDir = "database.directory"
	// CfgDatabaseInMemory defines whether the registry state is only kept in memory.
	CfgDatabaseInMemory = "database.inMemory"
	// CfgDatabaseDirty overrides the health flag left behind by the previous run.
	CfgDatabaseDirty = "database.dirty"
	// CfgDatabaseSyncWrites defines whether every commit is synced to disk before it is acknowledged.
	CfgDatabaseSyncWrites = "database.syncWrites"
	// CfgDatabaseCompression defines whether the badger tables are compressed.
	CfgDatabaseCompression = "database.compression"
)

func init() {
	flag.String(CfgDatabaseDir, "registrydb", "path to the database folder")
	flag.Bool(CfgDatabaseInMemory, false, "keep the registry in memory only (state is lost on shutdown)")
	flag.String(CfgDatabaseDirty, "", "set (true) or clear (false) the dirty flag of the database")
	flag.Bool(CfgDatabaseSyncWrites, true, "sync every commit to disk before acknowledging it")
	flag.Bool(CfgDatabaseCompression, false, "compress the tables of the database with zstd")
}
