package boltrepo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"igusafarm/internal/app/ports"
)

const snapshotBucket = "snapshots"

var errNotConfigured = errors.New("storage is not configured")

// Store keeps snapshots in a single local BoltDB file.
type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Put(ctx context.Context, key string, payload []byte) error {
	if err := s.check(ctx, key); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotBucket))
		if bucket == nil {
			return fmt.Errorf("snapshot bucket is missing")
		}
		return bucket.Put([]byte(key), payload)
	})
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := s.check(ctx, key); err != nil {
		return nil, err
	}
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotBucket))
		if bucket == nil {
			return fmt.Errorf("snapshot bucket is missing")
		}
		payload := bucket.Get([]byte(key))
		if payload == nil {
			return ports.ErrNotFound
		}
		// payload is only valid for the life of the transaction.
		out = append([]byte(nil), payload...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.check(ctx, key); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotBucket))
		if bucket == nil {
			return fmt.Errorf("snapshot bucket is missing")
		}
		return bucket.Delete([]byte(key))
	})
}

func (s *Store) check(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errNotConfigured
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("snapshot key is required")
	}
	return nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(snapshotBucket)); err != nil {
			return fmt.Errorf("create snapshot bucket: %w", err)
		}
		return nil
	})
}
