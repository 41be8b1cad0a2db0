// Package storagemeter backs the Storage.Put gas multiplier (spec.md
// §4.2) with an actual key-value store, so storage payload size is
// measured from a real write rather than threaded through by hand.
//
// Grounded on go-probe-master/probedb/leveldb/leveldb_test.go, which
// opens goleveldb against storage.NewMemStorage() for tests and a real
// file path otherwise; this package follows the same open-a-levelDB,
// wrap-it-in-a-small-interface shape.
package storagemeter

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// Meter is the collaborator gas.ComputeOpCost's Storage.Put branch
// consults for the size of the payload just written (spec.md §4.2:
// "the collaborator-supplied value used for the Storage.Put scaling
// rule").
type Meter interface {
	// Put writes key/value and records len(value) as the last payload
	// size.
	Put(key, value []byte) error
	// LastPayloadBytes returns the size, in bytes, of the value written
	// by the most recent Put call. Zero if Put has never been called.
	LastPayloadBytes() int
	// Close releases the underlying store.
	Close() error
}

// levelDBMeter is the real Meter, backed by an on-disk (or in-memory,
// for tests) LevelDB instance.
type levelDBMeter struct {
	db   *leveldb.DB
	last int
}

// Open opens a LevelDB store at path for storage metering.
func Open(path string) (Meter, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &levelDBMeter{db: db}, nil
}

// OpenMemory opens an in-memory LevelDB store, for tests and
// throwaway debug sessions that never need to persist storage across
// runs.
func OpenMemory() (Meter, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &levelDBMeter{db: db}, nil
}

func (m *levelDBMeter) Put(key, value []byte) error {
	if err := m.db.Put(key, value, nil); err != nil {
		return err
	}
	m.last = len(value)
	return nil
}

func (m *levelDBMeter) LastPayloadBytes() int {
	return m.last
}

func (m *levelDBMeter) Close() error {
	return m.db.Close()
}
