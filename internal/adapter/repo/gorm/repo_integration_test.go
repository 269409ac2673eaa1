package gormrepo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"testing"
	"testing/fstest"

	"igusafarm/internal/app/ports"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("IGUSA_DB_DSN")
	if dsn == "" {
		t.Skip("IGUSA_DB_DSN is required for integration test")
	}
	return dsn
}

func TestMigrationFilesSortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_b.sql":   {Data: []byte("SELECT 2;")},
		"0001_a.sql":   {Data: []byte("SELECT 1;")},
		"README.md":    {Data: []byte("notes")},
		"sub/0003.sql": {Data: []byte("SELECT 3;")},
	}
	files, err := migrationFiles(fsys)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) != 2 || files[0] != "0001_a.sql" || files[1] != "0002_b.sql" {
		t.Fatalf("unexpected migration order %v", files)
	}
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	files, err := migrationFiles(sub)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(files) < 2 || files[0] != "0001_game_saves.sql" {
		t.Fatalf("unexpected embedded migrations %v", files)
	}
}

func TestSnapshotStore_RoundTripAndHistory(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	defer Close(db)
	ctx := context.Background()
	if err := ApplyEmbeddedMigrations(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// second run must be a no-op
	if err := ApplyEmbeddedMigrations(ctx, db); err != nil {
		t.Fatalf("re-migrate: %v", err)
	}

	key := "it-igusa-save"
	_ = db.Exec("DELETE FROM game_saves WHERE save_key = ?", key).Error
	_ = db.Exec("DELETE FROM game_save_history WHERE save_key = ?", key).Error

	store := NewSnapshotStore(db)
	if _, err := store.Get(ctx, key); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Put(ctx, key, []byte(`{"currentDay":1}`)); err != nil {
		t.Fatalf("put 1: %v", err)
	}
	if err := store.Put(ctx, key, []byte(`{"currentDay":2}`)); err != nil {
		t.Fatalf("put 2: %v", err)
	}
	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"currentDay":2}` {
		t.Fatalf("expected latest payload, got %s", got)
	}

	history, err := store.History(ctx, key, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].Revision != 2 || history[1].Revision != 1 {
		t.Fatalf("unexpected history %+v", history)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, key); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
