package premiumo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", "storage:\n  backend: sqlite\n  path: /tmp/premiumo.db\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.Backend != "sqlite" || cfg.Storage.Path != "/tmp/premiumo.db" {
		t.Errorf("got %+v", cfg.Storage)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"storage":{"backend":"file","path":"/data/premiumo"}}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.Backend != "file" || cfg.Storage.Path != "/data/premiumo" {
		t.Errorf("got %+v", cfg.Storage)
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", "storage:\n  path: /data/premiumo\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("backend = %q, want the default backend", cfg.Storage.Backend)
	}
}

func TestLoadConfig_UnknownBackend(t *testing.T) {
	path := writeConfig(t, "config.yaml", "storage:\n  backend: redis\n")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "redis") {
		t.Errorf("expected an unknown-backend error naming the value, got %v", err)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeConfig(t, "config.yaml", ":\tnot yaml")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestOpenKV_File(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	cfg := Config{Storage: StorageConfig{Backend: "file", Path: dir}}

	kv, err := cfg.OpenKV()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := kv.(*FileKV); !ok {
		t.Fatalf("got %T, want *FileKV", kv)
	}
	if err := kv.Set(KeyTrades, "{}"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, KeyTrades+".json")); err != nil {
		t.Errorf("configured path not honored: %v", err)
	}
}

func TestOpenKV_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "premiumo.db")
	cfg := Config{Storage: StorageConfig{Backend: "sqlite", Path: path}}

	kv, err := cfg.OpenKV()
	if err != nil {
		t.Fatal(err)
	}
	s, ok := kv.(*SQLiteKV)
	if !ok {
		t.Fatalf("got %T, want *SQLiteKV", kv)
	}
	defer s.Close()
	if err := kv.Set(KeyTrades, "{}"); err != nil {
		t.Fatal(err)
	}
}
