// Copyright 2025 Certen Protocol
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "node.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsAndValidates(t *testing.T) {
	path := writeConfig(t, `
node:
  role: verifier
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Backend != "memory" {
		t.Fatalf("expected default backend memory, got %q", cfg.Store.Backend)
	}
	if cfg.Monitoring.Metrics.Port != 9090 {
		t.Fatalf("expected default metrics port 9090, got %d", cfg.Monitoring.Metrics.Port)
	}
}

func TestLoadSubstitutesEnvVars(t *testing.T) {
	t.Setenv("CERTEN_SIGNING_KEY_PATH", "/secrets/signing.key")
	path := writeConfig(t, `
node:
  role: authority
  signing_key_path: ${CERTEN_SIGNING_KEY_PATH}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Node.SigningKeyPath != "/secrets/signing.key" {
		t.Fatalf("expected substituted path, got %q", cfg.Node.SigningKeyPath)
	}
}

func TestLoadEnvVarDefaultFallback(t *testing.T) {
	path := writeConfig(t, `
node:
  role: authority
  signing_key_path: ${CERTEN_UNSET_VAR:-/default/signing.key}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Node.SigningKeyPath != "/default/signing.key" {
		t.Fatalf("expected default fallback, got %q", cfg.Node.SigningKeyPath)
	}
}

func TestValidateRejectsMissingRole(t *testing.T) {
	path := writeConfig(t, `
environment: dev
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing node.role")
	}
}

func TestValidateRejectsTrusteeWithoutKeyGenPath(t *testing.T) {
	path := writeConfig(t, `
node:
  role: trustee
  signing_key_path: /secrets/signing.key
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing trustee.keygen_key_path")
	}
}

func TestValidateRejectsKVBackendWithoutPath(t *testing.T) {
	path := writeConfig(t, `
node:
  role: verifier
store:
  backend: kv
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing store.path")
	}
}
