// Package store implements the persistent key-value store backing the CRM
// repositories. Each domain's full record sequence is kept under one key as a
// JSON-encoded array, mirroring the layout of the browser-local storage this
// system replaces.
package store

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var bucketName = []byte("crm")

// Store persists one JSON document per domain key in a single bbolt bucket.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create store bucket")
	}
	return &Store{db: db}, nil
}

// Load reads the sequence stored under domain into out. It returns false when
// no value is present. A value that fails to decode is treated the same as an
// absent value so a corrupted entry never takes the application down; the
// caller is expected to reseed and persist the default dataset.
func (s *Store) Load(domain string, out interface{}) (bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(domain))
		if v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "load %s", domain)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		zap.L().Warn("discarding malformed persisted data",
			zap.String("domain", domain), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// Save serializes v and writes it under domain, replacing any previous value.
func (s *Store) Save(domain string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", domain)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(domain), data)
	})
	return errors.Wrapf(err, "save %s", domain)
}

// Delete removes the value stored under domain. Deleting an absent key is a
// no-op.
func (s *Store) Delete(domain string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(domain))
	})
	return errors.Wrapf(err, "delete %s", domain)
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}
