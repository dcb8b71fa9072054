package registry

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/kvstore"
)

// region mutations ////////////////////////////////////////////////////////////////////////////////////////////////////

// mutations buffers the writes of a single call on top of the committed state. Reads see the buffered writes first, the
// store is only modified when the buffer is committed as a whole.
type mutations struct {
	store  kvstore.KVStore
	writes map[string][]byte
	keys   [][]byte
}

// newMutations returns an empty write buffer on top of the given store.
func newMutations(store kvstore.KVStore) (new *mutations) {
	return &mutations{
		store:  store,
		writes: make(map[string][]byte),
	}
}

// Get returns the buffered value of the key or the committed one if the key was not written yet.
func (m *mutations) Get(key []byte) (value []byte, exists bool, err error) {
	if bufferedValue, buffered := m.writes[string(key)]; buffered {
		return bufferedValue, true, nil
	}

	storedValue, err := m.store.Get(key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Errorf("failed to read key %x: %w", key, err)
	}

	return storedValue, true, nil
}

// Has returns true if the key exists in the buffer or in the committed state.
func (m *mutations) Has(key []byte) (has bool, err error) {
	if _, buffered := m.writes[string(key)]; buffered {
		return true, nil
	}

	if has, err = m.store.Has(key); err != nil {
		return false, errors.Errorf("failed to check key %x: %w", key, err)
	}

	return has, nil
}

// Set buffers a write.
func (m *mutations) Set(key, value []byte) {
	if _, buffered := m.writes[string(key)]; !buffered {
		m.keys = append(m.keys, append([]byte(nil), key...))
	}
	m.writes[string(key)] = value
}

// Size returns the number of buffered writes.
func (m *mutations) Size() int {
	return len(m.keys)
}

// Commit applies all buffered writes to the store as a single batch.
func (m *mutations) Commit() (err error) {
	if len(m.keys) == 0 {
		return nil
	}

	batch, err := m.store.Batched()
	if err != nil {
		return errors.Errorf("failed to create batch: %w", err)
	}
	for _, key := range m.keys {
		if err = batch.Set(key, m.writes[string(key)]); err != nil {
			batch.Cancel()
			return errors.Errorf("failed to stage key %x: %w", key, err)
		}
	}

	if err = batch.Commit(); err != nil {
		return errors.Errorf("failed to commit %d writes: %w", len(m.keys), err)
	}

	m.writes = make(map[string][]byte)
	m.keys = nil

	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
