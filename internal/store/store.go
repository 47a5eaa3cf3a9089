// Package store is the address book: canonical address text persisted in an
// embedded badger database under random UUIDs.
package store

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned for unknown or malformed ids.
var ErrNotFound = errors.New("address not found")

const keyPrefix = "addr/"

// Record is one stored address.
type Record struct {
	ID        string    `json:"id"`
	Canonical string    `json:"canonical"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// Store wraps a badger database. It runs value log GC in the background
// until Close for on-disk databases.
type Store struct {
	db  *badger.DB
	log *zap.Logger

	gcInterval time.Duration
	done       chan struct{}
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

// Open opens the database in dir, or an in-memory database when dir is empty.
func Open(dir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opt := badger.DefaultOptions(dir)
	if dir == "" {
		opt = opt.WithInMemory(true)
	}
	opt = opt.WithLogger(badgerLogger{log.Sugar()})

	db, err := badger.Open(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to open address book: %w", err)
	}
	s := &Store{
		db:         db,
		log:        log,
		gcInterval: 5 * time.Minute,
		done:       make(chan struct{}),
	}
	if dir != "" {
		s.wg.Add(1)
		go s.runGC()
	}
	return s, nil
}

func (s *Store) runGC() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.gcInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			err := s.db.RunValueLogGC(0.5)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				s.log.Warn("value log gc failed", zap.Error(err))
			}
		case <-s.done:
			return
		}
	}
}

// Close stops the GC loop and closes the database.
func (s *Store) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

// Put stores canonical text under a new id.
func (s *Store) Put(ctx context.Context, canonical, country string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	rec := Record{
		ID:        uuid.NewString(),
		Canonical: canonical,
		Country:   country,
		CreatedAt: time.Now().UTC(),
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return Record{}, fmt.Errorf("failed to encode record: %w", err)
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(rec.ID), buf.Bytes())
	})
	if err != nil {
		return Record{}, fmt.Errorf("failed to store record: %w", err)
	}
	return rec, nil
}

// Get returns the record stored under id.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	id, ok := normalizeID(id)
	if !ok {
		return Record{}, ErrNotFound
	}
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return gob.NewDecoder(bytes.NewReader(val)).Decode(&rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to load record: %w", err)
	}
	return rec, nil
}

// Delete removes the record stored under id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, ok := normalizeID(id)
	if !ok {
		return ErrNotFound
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); err != nil {
			return err
		}
		return txn.Delete(key(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// List returns every record, oldest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	var out []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return gob.NewDecoder(bytes.NewReader(val)).Decode(&rec)
			})
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func key(id string) []byte { return []byte(keyPrefix + id) }

func normalizeID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

// badgerLogger routes badger's log output through zap.
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}
