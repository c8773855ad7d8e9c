package chat

import (
	"errors"
	"testing"
)

func TestBeginDispatchAppendsUserTurn(t *testing.T) {
	store := NewStore("agent-1")
	store.SetPendingInput("draft")

	msg, err := store.BeginDispatch("Where is PR-4521?")
	if err != nil {
		t.Fatalf("BeginDispatch err: %v", err)
	}
	if msg.Role != RoleUser || msg.Content != "Where is PR-4521?" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.ID == "" || msg.CreatedAt.IsZero() {
		t.Fatalf("expected assigned id and timestamp, got %+v", msg)
	}

	if !store.Awaiting() {
		t.Fatal("expected awaiting flag raised")
	}
	if store.PendingInput() != "" {
		t.Fatalf("expected input buffer cleared, got %q", store.PendingInput())
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 message, got %d", store.Len())
	}
}

func TestBeginDispatchBusy(t *testing.T) {
	store := NewStore("agent-1")
	if _, err := store.BeginDispatch("first"); err != nil {
		t.Fatalf("first BeginDispatch err: %v", err)
	}

	if _, err := store.BeginDispatch("second"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("busy send must not touch the log, got %d messages", store.Len())
	}

	store.EndDispatch()
	if _, err := store.BeginDispatch("third"); err != nil {
		t.Fatalf("BeginDispatch after EndDispatch err: %v", err)
	}
}

func TestAppendFillsIdentity(t *testing.T) {
	store := NewStore("agent-1")
	got := store.Append(Message{Role: RoleAssistant, Content: "hi"})
	if got.ID == "" || got.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp assigned, got %+v", got)
	}
}

func TestClearKeepsAwaiting(t *testing.T) {
	store := NewStore("agent-1")
	if _, err := store.BeginDispatch("hello"); err != nil {
		t.Fatalf("BeginDispatch err: %v", err)
	}
	store.SetSampleState(true, true)

	store.Clear()

	if store.Len() != 0 {
		t.Fatalf("expected empty log, got %d messages", store.Len())
	}
	if !store.Awaiting() {
		t.Fatal("clear must not release an in-flight dispatch")
	}
	if _, seeded := store.SampleState(); seeded {
		t.Fatal("expected seed marker reset")
	}
}

func TestMessagesReturnsCopy(t *testing.T) {
	store := NewStore("agent-1")
	store.Append(Message{Role: RoleUser, Content: "a"})

	got := store.Messages()
	got[0].Content = "mutated"

	if store.Messages()[0].Content != "a" {
		t.Fatal("Messages must return an isolated copy")
	}
}

func TestStoresLookup(t *testing.T) {
	stores := NewStores([]string{"a", "b"})

	if _, ok := stores.ByAgent("a"); !ok {
		t.Fatal("expected store for agent a")
	}
	if _, ok := stores.ByAgent("missing"); ok {
		t.Fatal("unexpected store for unknown agent")
	}
	if len(stores.All()) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(stores.All()))
	}
}
