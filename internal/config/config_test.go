package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("AGENT_API_KEY", "")
	t.Setenv("AGENT_PROVIDER", "")
	t.Setenv("ARK_API_KEY", "")
	t.Setenv("ARK_ACCESS_KEY", "")
	t.Setenv("ARK_SECRET_KEY", "")
	t.Setenv("ARK_MODEL", "")
	t.Setenv("UI_SAMPLE_DATA", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected default addr: %q", cfg.Server.Addr)
	}
	if cfg.Agent.TimeoutSeconds != 60 {
		t.Fatalf("unexpected default timeout: %d", cfg.Agent.TimeoutSeconds)
	}
	if got := cfg.ResolveProvider(); got != ProviderStatic {
		t.Fatalf("expected static provider without credentials, got %s", got)
	}
	if cfg.UI.SampleDataDefault {
		t.Fatal("sample data must default to off")
	}
	if !cfg.UI.AltScreen {
		t.Fatal("alt screen must default to on")
	}
}

func TestLoadPortForms(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}

	t.Setenv("PORT", "127.0.0.1:9091")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9091" {
		t.Fatalf("expected host:port kept verbatim, got %q", cfg.Server.Addr)
	}
}

func TestResolveProviderPrecedence(t *testing.T) {
	t.Setenv("AGENT_PROVIDER", "")
	t.Setenv("AGENT_API_KEY", "gateway-key")
	t.Setenv("ARK_API_KEY", "ark-key")
	t.Setenv("ARK_MODEL", "doubao-pro")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if got := cfg.ResolveProvider(); got != ProviderGateway {
		t.Fatalf("gateway credentials must win, got %s", got)
	}

	t.Setenv("AGENT_API_KEY", "")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if got := cfg.ResolveProvider(); got != ProviderArk {
		t.Fatalf("ark credentials must be next, got %s", got)
	}

	t.Setenv("AGENT_PROVIDER", "static")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if got := cfg.ResolveProvider(); got != ProviderStatic {
		t.Fatalf("explicit provider must win, got %s", got)
	}
}

func TestLoadRejectsInvalidProvider(t *testing.T) {
	t.Setenv("AGENT_PROVIDER", "carrier-pigeon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("AGENT_PROVIDER", "")
	t.Setenv("AGENT_TIMEOUT_SECONDS", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
	t.Setenv("AGENT_TIMEOUT_SECONDS", "abc")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric timeout")
	}
}
