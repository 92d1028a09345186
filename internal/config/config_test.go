package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STOREFRONT_ADDR", "DATABASE_URL", "JWT_SECRET", "PROMOTED_CATEGORIES", "WEB_ADDR", "API_BASE_URL", "FETCH_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.WebAddr != ":3000" {
		t.Fatalf("expected default web addr :3000, got %q", cfg.WebAddr)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected api base url %q", cfg.APIBaseURL)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Fatalf("expected 5s fetch timeout, got %s", cfg.FetchTimeout)
	}
	if len(cfg.PromotedCategories) != len(DefaultPromotedCategories) {
		t.Fatalf("expected default promoted categories, got %v", cfg.PromotedCategories)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STOREFRONT_ADDR", ":9090")
	t.Setenv("API_BASE_URL", "http://api.local/")
	t.Setenv("FETCH_TIMEOUT", "250ms")
	t.Setenv("PROMOTED_CATEGORIES", "3, x, 4,,-1")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Addr)
	}
	if cfg.APIBaseURL != "http://api.local" {
		t.Fatalf("trailing slash should be trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.FetchTimeout != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", cfg.FetchTimeout)
	}
	if len(cfg.PromotedCategories) != 2 || cfg.PromotedCategories[0] != 3 || cfg.PromotedCategories[1] != 4 {
		t.Fatalf("unexpected promoted categories %v", cfg.PromotedCategories)
	}
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")
	if got := Load().FetchTimeout; got != 5*time.Second {
		t.Fatalf("expected fallback timeout, got %s", got)
	}
}

func TestLoad_AllInvalidPromotedFallsBackToDefaults(t *testing.T) {
	t.Setenv("PROMOTED_CATEGORIES", "x, 0, -3")

	got := Load().PromotedCategories
	if len(got) != len(DefaultPromotedCategories) {
		t.Fatalf("expected default promoted categories, got %v", got)
	}
	for i, id := range DefaultPromotedCategories {
		if got[i] != id {
			t.Fatalf("position %d: expected %d, got %d", i, id, got[i])
		}
	}
}
