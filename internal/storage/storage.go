package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chesscore/internal/board"
)

// Storage key layout
const (
	positionPrefix = "position/"
)

var (
	// ErrNotFound is returned when no position is stored under a name.
	ErrNotFound = errors.New("position not found")

	// ErrInvalidName is returned for empty position names.
	ErrInvalidName = errors.New("invalid position name")

	// ErrCorrupt is returned when a stored record no longer decodes to the
	// board it was saved as.
	ErrCorrupt = errors.New("stored position is corrupt")
)

// PositionRecord is the stored form of a named position.
type PositionRecord struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	Hash    uint64    `json:"hash"`
	SavedAt time.Time `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the position library in the directory chosen by
// ResolveDir(dir).
func NewStorage(dir string) (*Storage, error) {
	dbDir, err := ResolveDir(dir)
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (creating if needed) a position library in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open position library %s: %w", dir, err)
	}
	return &Storage{db: db}, nil
}

// OpenInMemory opens a position library that is discarded on Close.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory position library: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func positionKey(name string) []byte {
	return []byte(positionPrefix + name)
}

// SavePosition decodes fen and, if it is valid, stores it under name,
// replacing any earlier entry. The decoded board is returned.
func (s *Storage) SavePosition(name, fen string) (*board.Board, error) {
	if name == "" {
		return nil, ErrInvalidName
	}

	b, err := board.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("save %q: %w", name, err)
	}

	rec := PositionRecord{
		Name:    name,
		FEN:     fen,
		Hash:    b.Hash(),
		SavedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(positionKey(name), data)
	})
	if err != nil {
		return nil, fmt.Errorf("save %q: %w", name, err)
	}
	return b, nil
}

// Record returns the stored record for name.
func (s *Storage) Record(name string) (*PositionRecord, error) {
	if name == "" {
		return nil, ErrInvalidName
	}

	var rec PositionRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(positionKey(name))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	return &rec, nil
}

// LoadPosition decodes the position stored under name.
func (s *Storage) LoadPosition(name string) (*board.Board, error) {
	rec, err := s.Record(name)
	if err != nil {
		return nil, err
	}

	b, err := board.ParseFEN(rec.FEN)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w: %w", name, ErrCorrupt, err)
	}
	if b.Hash() != rec.Hash {
		return nil, fmt.Errorf("load %q: %w: hash %016x, stored %016x", name, ErrCorrupt, b.Hash(), rec.Hash)
	}
	if err := b.CheckConsistency(); err != nil {
		return nil, fmt.Errorf("load %q: %w: %w", name, ErrCorrupt, err)
	}
	return b, nil
}

// DeletePosition removes name from the library.
func (s *Storage) DeletePosition(name string) error {
	if name == "" {
		return ErrInvalidName
	}

	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(positionKey(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("delete %q: %w", name, ErrNotFound)
		}
		if err != nil {
			return err
		}
		return txn.Delete(positionKey(name))
	})
}

// ListPositions returns all stored names in sorted order.
func (s *Storage) ListPositions() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(positionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, positionPrefix))
		}
		return nil
	})

	sort.Strings(names)
	return names, err
}

// FindByHash returns the names of stored positions whose Zobrist hash is
// hash, in sorted order.
func (s *Storage) FindByHash(hash uint64) ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(positionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec PositionRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			if rec.Hash == hash {
				names = append(names, rec.Name)
			}
		}
		return nil
	})

	sort.Strings(names)
	return names, err
}
