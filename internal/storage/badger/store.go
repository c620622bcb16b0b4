// Package badger provides a BadgerHold-backed key-value store for the
// balance book and small device-local settings.
package badger

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/timshannon/badgerhold/v4"

	"github.com/varlikapp/varlik/internal/common"
	"github.com/varlikapp/varlik/internal/interfaces"
)

// ErrNotFound is returned by Get for missing keys.
var ErrNotFound = errors.New("key not found")

// IsNotFound reports whether err means the key did not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// kvEntry is the stored record shape.
type kvEntry struct {
	Key   string `badgerhold:"key"`
	Value string
}

// Store implements interfaces.KeyValueStorage using BadgerHold.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore opens a BadgerHold store at the given directory path.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", path, err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil // Disable default badger logger

	db, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage at %s: %w", path, err)
	}

	logger.Debug().Str("path", path).Msg("KV store opened")

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	var entry kvEntry
	err := s.db.Get(key, &entry)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return "", fmt.Errorf("key '%s': %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("failed to get key '%s': %w", key, err)
	}
	return entry.Value, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	entry := kvEntry{Key: key, Value: value}
	if err := s.db.Upsert(key, &entry); err != nil {
		return fmt.Errorf("failed to set key '%s': %w", key, err)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	err := s.db.Delete(key, kvEntry{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete key '%s': %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ interfaces.KeyValueStorage = (*Store)(nil)
