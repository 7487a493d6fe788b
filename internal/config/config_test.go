package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "scholarsite" {
		t.Errorf("default dbname = %q, want scholarsite", cfg.Database.DBName)
	}
	if cfg.Storage.CoverImagesBucket != "cover-images" {
		t.Errorf("default cover bucket = %q", cfg.Storage.CoverImagesBucket)
	}
	if cfg.Session.TokenFile != ".scholarsite-session" {
		t.Errorf("default token file = %q", cfg.Session.TokenFile)
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlBody := `
server:
  port: "9090"
jwt:
  secret: file-secret
admin:
  email: prof@example.edu
`
	if err := os.WriteFile(path, []byte(yamlBody), 0o644); err != nil {
		t.Fatal(err)
	}

	// Environment wins over the file.
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port from file = %q, want 9090", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("secret = %q, want env override", cfg.JWT.Secret)
	}
	if cfg.Admin.Email != "prof@example.edu" {
		t.Errorf("admin email = %q", cfg.Admin.Email)
	}
}

func TestLoadConfigRejectsMissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing JWT secret")
	}
}
