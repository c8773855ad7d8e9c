package agent

import "testing"

func TestSeedCoversEveryScreen(t *testing.T) {
	registry := NewMemoryRegistry(Seed())

	for _, screen := range Screens() {
		binding, ok := registry.ByScreen(screen)
		if !ok {
			t.Fatalf("no binding for screen %s", screen)
		}
		if binding.ID == "" || binding.Kind == "" {
			t.Fatalf("incomplete binding for screen %s: %+v", screen, binding)
		}
		if binding.Sample == nil {
			t.Fatalf("binding for screen %s is missing its sample payload", screen)
		}
	}
}

func TestRegistryByID(t *testing.T) {
	registry := NewMemoryRegistry(Seed())

	first := Seed()[0]
	got, ok := registry.ByID(first.ID)
	if !ok || got.Screen != first.Screen {
		t.Fatalf("ByID lookup failed: %+v ok=%v", got, ok)
	}

	if _, ok := registry.ByID("missing"); ok {
		t.Fatal("unexpected binding for unknown id")
	}
}

func TestParseScreen(t *testing.T) {
	if screen, ok := ParseScreen("audit"); !ok || screen != ScreenAudit {
		t.Fatalf("expected audit screen, got %s ok=%v", screen, ok)
	}
	if _, ok := ParseScreen("settings"); ok {
		t.Fatal("expected rejection of unknown screen name")
	}
}

func TestListPreservesOrder(t *testing.T) {
	registry := NewMemoryRegistry(Seed())
	list := registry.List()

	for i, screen := range Screens() {
		if list[i].Screen != screen {
			t.Fatalf("position %d: got %s want %s", i, list[i].Screen, screen)
		}
	}
}
