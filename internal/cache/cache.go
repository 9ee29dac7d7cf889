// Package cache provides the time-bounded store backing per-catalog show
// indexes. Entries expire as a whole; nothing is invalidated individually.
package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v3"
)

// Store is a TTL key/value store backed by Badger.
type Store struct {
	ttl time.Duration
	db  *badger.DB
}

// badgerLogger adapts slog for Badger's logger interface.
type badgerLogger struct {
	log *slog.Logger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.log.Error(f, "args", v)
}

func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.log.Warn(f, "args", v)
}

func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.log.Info(f, "args", v)
}

func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	l.log.Debug(f, "args", v)
}

// NewStore opens a TTL store at path. Entries written through Set expire
// after ttl.
func NewStore(path string, ttl time.Duration) (*Store, error) {
	log := slog.With("component", "cache")

	opts := badger.DefaultOptions(path).
		WithLogger(&badgerLogger{log: log}).
		WithValueLogFileSize(1<<26 - 1)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	err = db.RunValueLogGC(0.5)
	if err != nil && err != badger.ErrNoRewrite {
		db.Close()
		return nil, err
	}

	return &Store{db: db, ttl: ttl}, nil
}

// Set stores a gob-encodable value under key with the store TTL.
func (s *Store) Set(key string, value interface{}) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	tx := s.db.NewTransaction(true)
	defer tx.Discard()

	e := badger.NewEntry([]byte(key), buf.Bytes()).WithTTL(s.ttl)
	if err := tx.SetEntry(e); err != nil {
		return err
	}
	return tx.Commit()
}

// Get loads the value stored under key into out. Returns false when the key
// is absent or expired.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	tx := s.db.NewTransaction(false)
	defer tx.Discard()

	item, err := tx.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = item.Value(func(val []byte) error {
		return gob.NewDecoder(bytes.NewReader(val)).Decode(out)
	})
	if err != nil {
		return false, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return true, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ShowIndex is the cached series-name to show-id mapping of one catalog.
type ShowIndex map[string]int

func showIndexKey(catalog string) string {
	return "show-index/" + catalog
}

// GetShowIndex loads the cached show index for a catalog.
func (s *Store) GetShowIndex(catalog string) (ShowIndex, bool, error) {
	var index ShowIndex
	ok, err := s.Get(showIndexKey(catalog), &index)
	if err != nil || !ok {
		return nil, false, err
	}
	return index, true, nil
}

// PutShowIndex stores a catalog's show index for the expiration window.
func (s *Store) PutShowIndex(catalog string, index ShowIndex) error {
	return s.Set(showIndexKey(catalog), index)
}
