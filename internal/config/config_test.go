package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Column != "Solution" || c.ZeroSubstitute != 0.1 || c.Format != "text" || c.Delimiter != "" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Global{Column: "Width", ZeroSubstitute: 0.5, Delimiter: ";", Format: "json"}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestSaveDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := Save(&Global{Column: "Solution", ZeroSubstitute: 0.2, Format: "text"}, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".solstats", "config.yaml")); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ZeroSubstitute != 0.2 {
		t.Fatalf("zero_substitute = %v, want 0.2", c.ZeroSubstitute)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := Save(&Global{Column: "Solution", ZeroSubstitute: 0.1, Format: "text"}, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	t.Setenv("SOLSTATS_FORMAT", "markdown")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Format != "markdown" {
		t.Fatalf("format = %q, want markdown", c.Format)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadRejectsInvalidOverrides(t *testing.T) {
	cases := []struct {
		name, key, val string
	}{
		{"negative zero substitute", "SOLSTATS_ZERO_SUBSTITUTE", "-1"},
		{"unknown format", "SOLSTATS_FORMAT", "yaml"},
		{"unknown delimiter", "SOLSTATS_DELIMITER", "|"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv(tc.key, tc.val)
			if _, err := Load(""); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.val)
			}
		})
	}

	t.Run("negative zero substitute in file", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("zero_substitute: -0.5\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error for negative zero_substitute")
		}
	})
}
