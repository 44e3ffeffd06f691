package storage

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if _, err := store.Load(ctx, KeySchedule); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Save(ctx, KeySchedule, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, KeySchedule)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"v":1}` {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestSQLiteStoreUpsert(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.Save(ctx, KeyInput, []byte("first")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, KeyInput, []byte("second")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Load(ctx, KeyInput)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected overwrite to win, got %s", got)
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.Save(ctx, KeySchedule, []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, KeySchedule); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Load(ctx, KeySchedule); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting a missing key is not an error.
	if err := store.Delete(ctx, "weekplan_missing"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}
