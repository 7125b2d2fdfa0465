package memory

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage"
)

func TestReadAbsentKey(t *testing.T) {
	store := New()
	data, err := store.Read(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if data != nil {
		t.Errorf("absent key should read nil, got %q", data)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()

	want := []byte(`[{"id":"a"}]`)
	if err := store.Write(ctx, "k", want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := store.Read(ctx, "k")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Read = %q, want %q", got, want)
	}

	// Mutating the returned slice must not affect the stored value.
	got[0] = 'X'
	again, _ := store.Read(ctx, "k")
	if !bytes.Equal(again, want) {
		t.Error("stored value was mutated through the returned slice")
	}
}

func TestKeysPrefix(t *testing.T) {
	store := New()
	ctx := context.Background()
	for _, k := range []string{"app-users", "app-projects", "other-users"} {
		if err := store.Write(ctx, k, []byte("[]")); err != nil {
			t.Fatal(err)
		}
	}
	keys, err := store.Keys(ctx, "app-")
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "app-projects" || keys[1] != "app-users" {
		t.Errorf("Keys = %v, want [app-projects app-users]", keys)
	}
}

func TestDelete(t *testing.T) {
	store := New()
	ctx := context.Background()
	if err := store.Write(ctx, "k", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	data, _ := store.Read(ctx, "k")
	if data != nil {
		t.Error("deleted key should read nil")
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Errorf("deleting an absent key should be a no-op, got %v", err)
	}
}

func TestClosed(t *testing.T) {
	store := New()
	ctx := context.Background()
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Read(ctx, "k"); !errors.Is(err, storage.ErrClosed) {
		t.Errorf("Read on closed store = %v, want ErrClosed", err)
	}
	if err := store.Write(ctx, "k", nil); !errors.Is(err, storage.ErrClosed) {
		t.Errorf("Write on closed store = %v, want ErrClosed", err)
	}
}
