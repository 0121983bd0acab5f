package dialogue_test

import (
	"testing"

	model "github.com/kebele-gov/intake-agent/backend/internal/model/dialogue"
	dialogue "github.com/kebele-gov/intake-agent/backend/internal/service/dialogue"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := dialogue.NewMemoryStore()

	if _, ok := store.Get("citizen-1"); ok {
		t.Fatal("expected empty store")
	}

	session := model.NewSession("citizen-1", "en")
	store.Put(session)

	got, ok := store.Get("citizen-1")
	if !ok {
		t.Fatal("expected session after Put")
	}
	if got.UserID != "citizen-1" || got.State != model.StateGreeting {
		t.Fatalf("unexpected session: %+v", got)
	}

	store.Delete("citizen-1")
	if _, ok := store.Get("citizen-1"); ok {
		t.Fatal("expected session gone after Delete")
	}
}
