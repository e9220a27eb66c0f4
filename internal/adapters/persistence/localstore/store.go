package localstore

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket and key names. Each collection is stored as one JSON array
// under a fixed key, read and rewritten whole on every mutation.
var (
	bucketCollections = []byte("collections")
	bucketClientState = []byte("client_state")

	keyProducts = []byte("products")
	keyUsers    = []byte("users")
	keyStaff    = []byte("staff")
)

// Store is the embedded bbolt database used in local storage mode
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the bbolt file and ensures all buckets exist
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketCollections, bucketClientState} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}

	log.Printf("✅ Local store opened [%s]", path)
	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// HealthCheck verifies the database file is still readable
func (s *Store) HealthCheck() error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketCollections) == nil {
			return fmt.Errorf("local store missing collections bucket")
		}
		return nil
	})
}

// readList decodes the JSON array stored under key into out.
// A missing key leaves out untouched (empty collection).
func (s *Store) readList(bucket, key []byte, out interface{}) error {
	return s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucket).Get(key)
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, out)
	})
}

// writeList replaces the value under key with the JSON encoding of in
func (s *Store) writeList(bucket, key []byte, in interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, raw)
	})
}

// update runs a read-modify-write cycle on the value under key inside a
// single transaction. fn receives the current raw value (nil when
// absent) and returns the replacement.
func (s *Store) update(bucket, key []byte, fn func(raw []byte) ([]byte, error)) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		next, err := fn(b.Get(key))
		if err != nil {
			return err
		}
		return b.Put(key, next)
	})
}

// deleteKey removes a key, no error when absent
func (s *Store) deleteKey(bucket, key []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete(key)
	})
}
