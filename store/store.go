// Package store autosaves the working document in an embedded BadgerDB so a
// crashed or closed editor reopens where it left off. Persistence failures
// never surface to the user: a failed load means "no stored document", a
// failed save is dropped after logging.
package store

import (
	"errors"
	"fmt"
	"log"

	"github.com/dgraph-io/badger/v4"

	"github.com/tcarls/brickbreaker/level"
)

// storageKey is the fixed key the working document lives under.
var storageKey = []byte("editor/level")

type Store struct {
	db *badger.DB
}

// Open opens (or creates) the autosave database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store with no disk backing, for tests.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open in-memory: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the stored document, cleaned, or ok=false when nothing
// usable is stored.
func (s *Store) Load() (*level.Level, bool) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storageKey)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			log.Printf("store: load failed: %v", err)
		}
		return nil, false
	}
	lvl, err := level.Decode(data)
	if err != nil {
		log.Printf("store: stored document unreadable: %v", err)
		return nil, false
	}
	lvl.Clean()
	return lvl, true
}

// Save writes the document under the fixed key. The document is cleaned
// first so ghost bricks never become durable.
func (s *Store) Save(lvl *level.Level) {
	clean := lvl.Clone()
	clean.Clean()
	data, err := level.Encode(clean)
	if err != nil {
		log.Printf("store: save failed: %v", err)
		return
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storageKey, data)
	})
	if err != nil {
		log.Printf("store: save failed: %v", err)
	}
}
