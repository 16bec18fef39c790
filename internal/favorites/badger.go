// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package favorites

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const (
	badgerKeyPrefix = "favorites:"

	// maxConflictRetries bounds retries of an Update that lost a
	// serializable conflict to a concurrent writer on the same user.
	maxConflictRetries = 3

	// gcDiscardRatio is the fraction of a value log file that must be stale
	// before GC rewrites it.
	gcDiscardRatio = 0.5
)

// BadgerStore persists favorites in an embedded BadgerDB.
// Each user is one key holding a JSON array of point IDs.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens a store at dir. An empty dir opens an in-memory
// database.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger favorites store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close releases the database.
func (b *BadgerStore) Close() error {
	return b.db.Close()
}

// RunGC garbage collects the value log until nothing is left to rewrite or
// ctx ends. It is a no-op for in-memory stores.
func (b *BadgerStore) RunGC(ctx context.Context) error {
	if b.db.Opts().InMemory {
		return nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := b.db.RunValueLogGC(gcDiscardRatio)
		switch {
		case err == nil:
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrRejected):
			return nil
		default:
			return fmt.Errorf("badger value log gc: %w", err)
		}
	}
}

// Add implements Store.
func (b *BadgerStore) Add(ctx context.Context, userID, pointID string) (bool, error) {
	var added bool
	err := b.update(ctx, func(txn *badger.Txn) error {
		ids, err := readIDs(txn, userID)
		if err != nil {
			return err
		}
		added, err = addID(txn, userID, ids, pointID)
		return err
	})
	return added, err
}

// Remove implements Store.
func (b *BadgerStore) Remove(ctx context.Context, userID, pointID string) (bool, error) {
	var removed bool
	err := b.update(ctx, func(txn *badger.Txn) error {
		ids, err := readIDs(txn, userID)
		if err != nil {
			return err
		}
		removed, err = removeID(txn, userID, ids, pointID)
		return err
	})
	return removed, err
}

// Toggle implements Store. The read and the write share one transaction, so
// a concurrent toggle on the same user conflicts and is retried.
func (b *BadgerStore) Toggle(ctx context.Context, userID, pointID string) (bool, error) {
	var favorite bool
	err := b.update(ctx, func(txn *badger.Txn) error {
		ids, err := readIDs(txn, userID)
		if err != nil {
			return err
		}
		if slices.Contains(ids, pointID) {
			favorite = false
			_, err = removeID(txn, userID, ids, pointID)
			return err
		}
		favorite = true
		_, err = addID(txn, userID, ids, pointID)
		return err
	})
	return favorite, err
}

// Contains implements Store.
func (b *BadgerStore) Contains(ctx context.Context, userID, pointID string) (bool, error) {
	ids, err := b.List(ctx, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, pointID), nil
}

// List implements Store.
func (b *BadgerStore) List(ctx context.Context, userID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ids []string
	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		ids, err = readIDs(txn, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (b *BadgerStore) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = b.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("favorites update conflict after %d attempts: %w", maxConflictRetries, err)
}

func addID(txn *badger.Txn, userID string, ids []string, pointID string) (bool, error) {
	if slices.Contains(ids, pointID) {
		return false, nil
	}
	return true, writeIDs(txn, userID, append(ids, pointID))
}

func removeID(txn *badger.Txn, userID string, ids []string, pointID string) (bool, error) {
	i := slices.Index(ids, pointID)
	if i < 0 {
		return false, nil
	}
	ids = slices.Delete(ids, i, i+1)
	if len(ids) == 0 {
		return true, txn.Delete(badgerKey(userID))
	}
	return true, writeIDs(txn, userID, ids)
}

func badgerKey(userID string) []byte {
	return []byte(badgerKeyPrefix + userID)
}

func readIDs(txn *badger.Txn, userID string) ([]string, error) {
	item, err := txn.Get(badgerKey(userID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	ids := []string{}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &ids)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode favorites for %s: %w", userID, err)
	}
	return ids, nil
}

func writeIDs(txn *badger.Txn, userID string, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return txn.Set(badgerKey(userID), data)
}
