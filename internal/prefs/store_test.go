package prefs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "documents", "extraction_mode", "layout"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get(ctx, "documents", "extraction_mode")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "layout" {
		t.Fatalf("expected layout, got %q", got)
	}
}

func TestSetReplacesExisting(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "documents", "extraction_mode", "text"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "documents", "extraction_mode", "ocr"); err != nil {
		t.Fatalf("Set replace: %v", err)
	}
	got, err := store.Get(ctx, "documents", "extraction_mode")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "ocr" {
		t.Fatalf("expected ocr, got %q", got)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "browser", "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDefaultFallsBack(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if got := store.GetDefault(ctx, "documents", "extraction_mode", "text"); got != "text" {
		t.Fatalf("expected fallback text, got %q", got)
	}
	if err := store.Set(ctx, "documents", "extraction_mode", "layout"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := store.GetDefault(ctx, "documents", "extraction_mode", "text"); got != "layout" {
		t.Fatalf("expected layout, got %q", got)
	}
}

func TestKeysScopedByPanel(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "documents", "mode", "layout"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "browser", "mode", "tabs"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get(ctx, "documents", "mode")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "layout" {
		t.Fatalf("expected layout, got %q", got)
	}
}
