package database

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/kvstore"

	"github.com/iotaledger/assetledger/packages/database"
)

var healthKey = []byte{database.PrefixHealth, 'h'}

// MarkUnhealthy marks the database as not healthy, meaning that it wasn't shutdown properly.
func (d *Database) MarkUnhealthy() error {
	if err := d.store.Set(healthKey, []byte{}); err != nil {
		return errors.Errorf("failed to set database health state: %w", err)
	}
	return nil
}

// MarkHealthy marks the database as healthy, respectively correctly closed.
func (d *Database) MarkHealthy() error {
	if err := d.store.Delete(healthKey); err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		return errors.Errorf("failed to set database health state: %w", err)
	}
	return nil
}

// IsUnhealthy tells whether the database is unhealthy, meaning not shutdown properly.
func (d *Database) IsUnhealthy() (bool, error) {
	contains, err := d.store.Has(healthKey)
	if err != nil {
		return false, errors.Errorf("failed to read database health state: %w", err)
	}
	return contains, nil
}
