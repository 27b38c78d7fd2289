package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkhoury/cookmode/internal/logger"
)

func TestDefaultsWithoutFile(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), log)
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if cfg.ReducedMotion() {
		t.Fatal("reduced_motion should default to false")
	}
	if !cfg.ChimeEnabled() {
		t.Fatal("chime should default to true")
	}
	if cfg.LogLevel() != "normal" {
		t.Fatalf("unexpected default log_level %q", cfg.LogLevel())
	}
}

func TestLoadFromFile(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "reduced_motion: true\nchime: false\nrecipes_dir: /tmp/recipes\nlog_level: verbose\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path, log)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.ReducedMotion() {
		t.Fatal("expected reduced_motion true")
	}
	if cfg.ChimeEnabled() {
		t.Fatal("expected chime false")
	}
	if cfg.RecipesDir() != "/tmp/recipes" {
		t.Fatalf("unexpected recipes_dir %q", cfg.RecipesDir())
	}
	if cfg.LogLevel() != "verbose" {
		t.Fatalf("unexpected log_level %q", cfg.LogLevel())
	}
}

func TestWatchObservesRewrite(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("reduced_motion: false\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path, log)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ReducedMotion() {
		t.Fatal("expected reduced_motion false before rewrite")
	}

	changed := make(chan struct{}, 1)
	cfg.OnChange(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	cfg.Watch()

	// Give the watcher a moment to register before rewriting.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("reduced_motion: true\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("config rewrite never observed")
	}
	if !cfg.ReducedMotion() {
		t.Fatal("expected reduced_motion true after rewrite")
	}
}
