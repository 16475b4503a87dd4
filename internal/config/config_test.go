package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGameServerMissingFile(t *testing.T) {
	cfg, err := LoadGameServer(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadGameServer() = %v", err)
	}
	if cfg.Port != 7777 {
		t.Errorf("port = %d, want the default", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadGameServerOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	body := []byte("port: 4242\ndatabase:\n  host: db.internal\nworld:\n  spawn_x: 12\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGameServer(path)
	if err != nil {
		t.Fatalf("LoadGameServer() = %v", err)
	}
	if cfg.Port != 4242 {
		t.Errorf("port = %d, want 4242", cfg.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("db host = %q, want db.internal", cfg.Database.Host)
	}
	// Untouched keys keep their defaults.
	if cfg.Database.Port != 5432 {
		t.Errorf("db port = %d, want the default", cfg.Database.Port)
	}
	if cfg.World.SpawnX != 12 {
		t.Errorf("spawn x = %d, want 12", cfg.World.SpawnX)
	}
}

func TestLoadGameServerBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("port: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGameServer(path); err == nil {
		t.Fatal("LoadGameServer() with bad yaml, want error")
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432,
		User: "u", Password: "p", DBName: "world", SSLMode: "disable",
	}
	want := "postgres://u:p@localhost:5432/world?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
