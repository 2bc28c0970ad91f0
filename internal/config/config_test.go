package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwizard/pkg/validation"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FORMWIZARD_CONFIG", "")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Config{
		Server:     ServerConfig{Addr: ":8080", ShutdownGrace: 5 * time.Second},
		Catalog:    CatalogConfig{Format: CatalogYAML},
		Validation: ValidationConfig{Policy: "required"},
		Log:        LogConfig{Level: "info", Format: "console"},
		Terminal:   TerminalConfig{Driver: "survey"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formwizard.yaml")
	content := "server:\n  addr: \":9090\"\n  shutdown_grace: 2s\nvalidation:\n  policy: strict\ntheme:\n  variant: dark\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FORMWIZARD_LOG_LEVEL", "debug")

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.ShutdownGrace != 2*time.Second {
		t.Fatalf("server config = %+v", cfg.Server)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("env override ignored: %+v", cfg.Log)
	}
	if cfg.Theme.Variant != "dark" {
		t.Fatalf("theme config = %+v", cfg.Theme)
	}
	policy, err := cfg.Policy()
	if err != nil || policy != validation.PolicyStrict {
		t.Fatalf("policy = %v, %v", policy, err)
	}
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formwizard.yaml")
	if err := os.WriteFile(path, []byte("terminal:\n  driver: huh\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FORMWIZARD_CONFIG", path)

	cfg, err := Load(nil, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Terminal.Driver != "huh" {
		t.Fatalf("driver = %q", cfg.Terminal.Driver)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("FORMWIZARD_CONFIG", "")
	v := New()
	v.Set("validation.policy", "lenient")
	v.Set("catalog.format", "xml")

	if _, err := Load(v, ""); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
}
