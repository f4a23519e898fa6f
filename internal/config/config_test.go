package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConfig = `
server:
  host: 0.0.0.0
  port: 8080
  mode: release
  timeout: 30s

auth:
  demo_email: demo@phrm.com
  demo_password_hash: "$2a$10$abcdefghijklmnopqrstuv"
  jwt_secret: file-secret
  token_expiry: 24h
  login_delay: 1s

activity:
  capacity: 200

demo:
  seed: true
  seed_file: configs/seed.yaml
`

func chdirWithConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(prev) })
}

func TestLoad(t *testing.T) {
	chdirWithConfig(t, sampleConfig)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Mode != "release" {
		t.Errorf("server config wrong: %+v", cfg.Server)
	}
	if cfg.Server.Timeout.Std() != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.Server.Timeout.Std())
	}
	if cfg.Auth.DemoEmail != "demo@phrm.com" || cfg.Auth.TokenExpiry.Std() != 24*time.Hour {
		t.Errorf("auth config wrong: %+v", cfg.Auth)
	}
	if cfg.Auth.LoginDelay.Std() != time.Second {
		t.Errorf("login delay = %v, want 1s", cfg.Auth.LoginDelay.Std())
	}
	if cfg.Activity.Capacity != 200 {
		t.Errorf("activity capacity = %d, want 200", cfg.Activity.Capacity)
	}
	if !cfg.Demo.Seed || cfg.Demo.SeedFile != "configs/seed.yaml" {
		t.Errorf("demo config wrong: %+v", cfg.Demo)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirWithConfig(t, sampleConfig)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DEMO_PASSWORD_HASH", "env-hash")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("jwt secret = %q, want env override", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.DemoPasswordHash != "env-hash" {
		t.Errorf("password hash = %q, want env override", cfg.Auth.DemoPasswordHash)
	}
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	chdirWithConfig(t, "server:\n  timeout: soon\n")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a malformed duration")
	}
}

func TestLoadMissingFile(t *testing.T) {
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(prev) })

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when no config file exists")
	}
}
