package store

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	"aiatlas/pkg/logger"
)

var (
	db     *pebble.DB
	dbPath string
)

// ErrNotFound reports that no record exists under the requested key. It is
// a signal, not a failure: callers fall back to defaults or sample data on
// this error and treat everything else as a backend failure.
var ErrNotFound = errors.New("record not found")

// Open opens (or creates) a Pebble database at the given path and keeps a
// global handle for simple usage in this package.
func Open(path string) error {
	var err error
	logger.Info("opening_pebble_db", "path", path)
	db, err = pebble.Open(path, &pebble.Options{})
	if err != nil {
		logger.Error("pebble_open_failed", "path", path, "error", err)
		return err
	}
	dbPath = path
	logger.Info("pebble_opened", "path", path)
	return nil
}

// Close closes the opened pebble DB if present.
func Close() error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return err
	}
	db = nil
	logger.Info("pebble_closed")
	return nil
}

// Ready reports whether the store is opened and ready.
func Ready() bool {
	return db != nil
}

// get returns the raw value stored under key, or ErrNotFound.
func get(key string) ([]byte, error) {
	if db == nil {
		return nil, fmt.Errorf("pebble not opened; call store.Open first")
	}
	v, closer, err := db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	out := append([]byte(nil), v...)
	_ = closer.Close()
	return out, nil
}

// set stores value under key with a synced write.
func set(key string, value []byte) error {
	if db == nil {
		return fmt.Errorf("pebble not opened; call store.Open first")
	}
	if err := db.Set([]byte(key), value, pebble.Sync); err != nil {
		logger.Error("pebble_set_failed", "key", key, "error", err)
		return err
	}
	return nil
}

// del removes key. Deleting a missing key is not an error.
func del(key string) error {
	if db == nil {
		return fmt.Errorf("pebble not opened; call store.Open first")
	}
	if err := db.Delete([]byte(key), pebble.Sync); err != nil {
		logger.Error("pebble_delete_failed", "key", key, "error", err)
		return err
	}
	return nil
}

// scanPrefix returns all values whose key starts with prefix, unordered from
// the caller's point of view (pebble iterates in key order, but callers sort
// by their own date fields after decoding).
func scanPrefix(prefix string) ([][]byte, error) {
	if db == nil {
		return nil, fmt.Errorf("pebble not opened; call store.Open first")
	}
	lb := []byte(prefix)
	ub := append(append([]byte(nil), lb...), 0xff)
	iter, err := db.NewIter(&pebble.IterOptions{LowerBound: lb, UpperBound: ub})
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var out [][]byte
	for iter.First(); iter.Valid(); iter.Next() {
		out = append(out, append([]byte(nil), iter.Value()...))
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return out, nil
}
