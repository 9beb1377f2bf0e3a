package store_test

import (
	"context"
	"testing"

	"github.com/unclebandit/campaign-planner/internal/store"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	if _, ok, err := s.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	value := []byte("hello")
	if err := s.Set(ctx, "k", value); err != nil {
		t.Fatal(err)
	}
	value[0] = 'j'

	got, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected key, got ok=%v err=%v", ok, err)
	}
	if string(got) != "hello" {
		t.Errorf("stored value was mutated by caller: %q", got)
	}

	if err := s.Clear(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("expected key cleared")
	}
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	type resources struct {
		Hours  float64 `json:"hours"`
		Budget float64 `json:"budget"`
	}

	var out resources
	ok, err := store.GetJSON(ctx, s, store.LastPlanKey, &out)
	if ok || err != nil {
		t.Fatalf("expected nothing stored, got ok=%v err=%v", ok, err)
	}

	if err := store.SetJSON(ctx, s, store.LastPlanKey, resources{Hours: 20, Budget: 1562.5}); err != nil {
		t.Fatal(err)
	}
	ok, err = store.GetJSON(ctx, s, store.LastPlanKey, &out)
	if !ok || err != nil {
		t.Fatalf("expected stored value, got ok=%v err=%v", ok, err)
	}
	if out.Hours != 20 || out.Budget != 1562.5 {
		t.Errorf("unexpected value: %+v", out)
	}

	if err := s.Set(ctx, "bad", []byte("{")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetJSON(ctx, s, "bad", &out); err == nil {
		t.Error("expected decode error")
	}
}
