// Package prefs persists the small set of user preferences the CLI keeps
// between runs: the colour theme and the signed-in user. Values live in an
// embedded BadgerDB; a missing key is a normal condition and yields defaults.
package prefs

import (
	"errors"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Keys.
const (
	KeyTheme       = "theme"
	KeyCurrentUser = "currentUser"
)

// ErrNotFound is returned by the raw accessors when a key is absent.
var ErrNotFound = errors.New("prefs: key not found")

// Config holds configuration for a Store.
type Config struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM; used by tests.
	InMemory bool

	// Logger receives badger's internal logging. Nil disables it.
	Logger *zap.Logger
}

// Store is a preference store backed by BadgerDB. It is safe for concurrent
// use.
type Store struct {
	db     *badger.DB
	logger *zap.Logger
}

// badgerLogger adapts zap to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Open opens the store described by cfg. The caller must Close it.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, eris.New("prefs: path is required for a persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, eris.Wrapf(err, "prefs: create directory %s", cfg.Path)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger.Named("badger").Sugar()})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, eris.Wrap(err, "prefs: open badger")
	}

	logger := zap.L().Named("prefs")
	logger.Debug("store opened", zap.String("path", cfg.Path), zap.Bool("in_memory", cfg.InMemory))
	return &Store{db: db, logger: logger}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return eris.Wrap(err, "prefs: close badger")
	}
	return nil
}

// Get returns the raw value stored under key, or ErrNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "prefs: get %s", key)
	}
	return val, nil
}

// Set stores val under key.
func (s *Store) Set(key string, val []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
	if err != nil {
		return eris.Wrapf(err, "prefs: set %s", key)
	}
	s.logger.Debug("preference saved", zap.String("key", key))
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return eris.Wrapf(err, "prefs: delete %s", key)
	}
	s.logger.Debug("preference removed", zap.String("key", key))
	return nil
}
