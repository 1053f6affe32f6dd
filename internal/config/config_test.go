package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HTTP.Addr != ":3040" {
		t.Errorf("HTTP.Addr = %q, want :3040", c.HTTP.Addr)
	}
	if c.Storage.DataDir != "data" {
		t.Errorf("Storage.DataDir = %q, want data", c.Storage.DataDir)
	}
	if c.Storage.RemoteTimeout != 10*time.Second {
		t.Errorf("Storage.RemoteTimeout = %v, want 10s", c.Storage.RemoteTimeout)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
app:
  env: dev
http:
  addr: ":8080"
storage:
  data_dir: "/var/lib/sportstroy"
  remote_timeout: 3s
metrics:
  enabled: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.App.Env != "dev" {
		t.Errorf("App.Env = %q", c.App.Env)
	}
	if c.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q", c.HTTP.Addr)
	}
	if c.Storage.RemoteTimeout != 3*time.Second {
		t.Errorf("Storage.RemoteTimeout = %v", c.Storage.RemoteTimeout)
	}
	if !c.Metrics.Enabled {
		t.Error("Metrics.Enabled = false")
	}
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("want error on malformed yaml")
	}
}
