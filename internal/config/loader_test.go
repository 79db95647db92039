package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopak/contactbook/internal/assets"
)

func TestLoadDefaultsAndFiles_DefaultsOnly(t *testing.T) {
	cfg, err := LoadDefaultsAndFiles(assets.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.File != "contacts.txt" {
		t.Fatalf("default file not loaded: %q", cfg.File)
	}
	if Get() != cfg {
		t.Fatalf("current config not updated")
	}
}

func TestLoadDefaultsAndFiles_OverlayWins(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "user.yaml")
	os.WriteFile(f, []byte(`
file: /data/people.txt
`), 0o644)

	cfg, err := LoadDefaultsAndFiles([]byte("file: contacts.txt\nlog_file: a.log\n"), []string{f})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.File != "/data/people.txt" {
		t.Fatalf("file not overridden: %s", cfg.File)
	}
	if cfg.LogFile != "a.log" {
		t.Fatalf("log_file lost from defaults: %s", cfg.LogFile)
	}
}

func TestLoadDefaultsAndFiles_SortedOrder(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yaml")
	os.WriteFile(f1, []byte("file: first.txt\n"), 0o644)
	os.WriteFile(f2, []byte("file: second.txt\n"), 0o644)

	cfg, err := LoadDefaultsAndFiles(nil, []string{f2, f1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.File != "second.txt" {
		t.Fatalf("later file should win, got %s", cfg.File)
	}
}

func TestLoadDefaultsAndFiles_SkipsNonYAML(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "notes.txt")
	os.WriteFile(f, []byte("not: [yaml"), 0o644)
	cfg, err := LoadDefaultsAndFiles([]byte("file: contacts.txt\n"), []string{f})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.File != "contacts.txt" {
		t.Fatalf("unexpected file: %s", cfg.File)
	}
}

func TestLoadDefaultsAndFiles_BadYAML(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "broken.yaml")
	os.WriteFile(f, []byte("file: [unterminated"), 0o644)
	if _, err := LoadDefaultsAndFiles(nil, []string{f}); err == nil {
		t.Fatalf("expected parse error")
	}
}
