package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/unclebandit/campaign-planner/internal/store"
)

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	first := store.NewFileStore(path)
	if _, ok, err := first.Get(ctx, store.LastPlanKey); ok || err != nil {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}
	if err := store.SetJSON(ctx, first, store.LastPlanKey, map[string]int{"contacts": 12656}); err != nil {
		t.Fatal(err)
	}

	second := store.NewFileStore(path)
	var got map[string]int
	ok, err := store.GetJSON(ctx, second, store.LastPlanKey, &got)
	if err != nil || !ok {
		t.Fatalf("expected persisted value, got ok=%v err=%v", ok, err)
	}
	if got["contacts"] != 12656 {
		t.Errorf("unexpected value %v", got)
	}

	if err := second.Clear(ctx, store.LastPlanKey); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := first.Get(ctx, store.LastPlanKey); ok {
		t.Error("expected key cleared")
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := store.NewFileStore(path).Get(context.Background(), "k"); err == nil {
		t.Error("expected error for corrupt state file")
	}
}
