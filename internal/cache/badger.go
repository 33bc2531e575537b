// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package cache

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/tomtom215/watchnext/internal/logging"
)

// Badger stores entries in an in-memory BadgerDB instance. Values are JSON
// encoded and every entry carries a native badger TTL, so expiry needs no
// sweeper. Nothing touches disk.
type Badger[V any] struct {
	db  *badger.DB
	ttl time.Duration

	hits   atomic.Int64
	misses atomic.Int64
	closed atomic.Bool
}

// NewBadger opens an in-memory badger store with the given entry TTL.
func NewBadger[V any](ttl time.Duration) (*Badger[V], error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithMemTableSize(16 << 20).
		WithNumCompactors(2)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger: %w", err)
	}
	return &Badger[V]{db: db, ttl: ttl}, nil
}

// Get implements Cacher. Decode and read errors count as misses.
func (c *Badger[V]) Get(key string) (V, bool) {
	var out V
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Warn().Err(err).Str("key", key).Msg("badger cache read failed")
		}
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	return out, true
}

// Set implements Cacher. Encode and write failures are logged and dropped;
// a lost cache write only costs a refetch.
func (c *Badger[V]) Set(key string, value V) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("badger cache encode failed")
		return
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), data).WithTTL(c.ttl))
	})
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("badger cache write failed")
	}
}

// Delete implements Cacher.
func (c *Badger[V]) Delete(key string) {
	if err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	}); err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("badger cache delete failed")
	}
}

// Clear implements Cacher.
func (c *Badger[V]) Clear() {
	if err := c.db.DropAll(); err != nil {
		logging.Warn().Err(err).Msg("badger cache clear failed")
	}
}

// Len implements Cacher by walking the live keys; expired entries are
// skipped by the iterator.
func (c *Badger[V]) Len() int {
	n := 0
	_ = c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n
}

// GetStats implements Cacher.
func (c *Badger[V]) GetStats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		TotalKeys: int64(c.Len()),
	}
}

// HitRate implements Cacher.
func (c *Badger[V]) HitRate() float64 {
	return c.GetStats().HitRate()
}

// Close implements Cacher. Safe to call more than once.
func (c *Badger[V]) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close badger: %w", err)
	}
	return nil
}
