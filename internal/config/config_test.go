package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SNOWUI_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	c, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c != Default() {
		t.Errorf("Load with no file or env = %+v, want defaults %+v", c, Default())
	}
}

func TestLoadFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snowui.toml")
	body := "[bus]\npending_warn = 7\n\n[dump]\ncolor = false\nmax_depth = 2\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNOWUI_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.Bus.PendingWarn != 7 {
		t.Errorf("Bus.PendingWarn = %d, want 7", c.Bus.PendingWarn)
	}
	if c.Dump.Color {
		t.Error("Dump.Color = true, want false from file")
	}
	if c.Dump.MaxDepth != 2 {
		t.Errorf("Dump.MaxDepth = %d, want 2", c.Dump.MaxDepth)
	}
	if c.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want untouched default", c.Log.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SNOWUI_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("SNOWUI_LOG_LEVEL", "debug")
	t.Setenv("SNOWUI_BUS_PENDING_WARN", "9")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want env override %q", c.Log.Level, "debug")
	}
	if c.Bus.PendingWarn != 9 {
		t.Errorf("Bus.PendingWarn = %d, want env override 9", c.Bus.PendingWarn)
	}
}

func TestGetMemoized(t *testing.T) {
	first := Get()
	second := Get()
	if first != second {
		t.Errorf("Get() returned different values: %+v then %+v", first, second)
	}
}
