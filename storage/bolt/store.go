// Package bolt persists the cached user profile in a local bbolt file,
// filling the role the platform key-value store plays on mobile.
package bolt

import (
	"encoding/json"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/lifefellowship/fellowship-client/logger"
	"github.com/lifefellowship/fellowship-client/model"
)

const (
	bucketName = "session"
	profileKey = "userSession"
)

var _ model.ProfileStore = (*Store)(nil)

// Store is a model.ProfileStore holding at most one serialized profile record
// under a fixed key.
type Store struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewStore opens (or creates) the cache file at path.
func NewStore(path string, logger *logger.Logger) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache file: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache bucket: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Save serializes the record and writes it under the fixed key, replacing any
// previous value.
func (s *Store) Save(account model.UserAccount) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(profileKey), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}

// Load returns the cached record, or nil when the key is absent or the stored
// value does not deserialize. Decode failures are logged, not returned: the
// caller falls through to a remote fetch.
func (s *Store) Load() (*model.UserAccount, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if value := tx.Bucket([]byte(bucketName)).Get([]byte(profileKey)); value != nil {
			raw = append(raw, value...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	if raw == nil {
		return nil, nil
	}

	var account model.UserAccount
	if err := json.Unmarshal(raw, &account); err != nil {
		s.logger.Error("Profile store: failed to decode cached profile",
			"error", err.Error())
		return nil, nil
	}

	return &account, nil
}

// Clear removes the cached record. Removing an absent key is not an error.
func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(profileKey))
	})
	if err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}

	return nil
}

// Close releases the underlying cache file.
func (s *Store) Close() error {
	return s.db.Close()
}
