package recipe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/logger"
)

func TestMemorySourceListAndGet(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	summaries, err := src.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) < 2 {
		t.Fatalf("expected built-in recipes, got %d", len(summaries))
	}
	for i := 1; i < len(summaries); i++ {
		if summaries[i-1].Title > summaries[i].Title {
			t.Fatal("summaries not sorted by title")
		}
	}

	r, err := src.Get(ctx, "weeknight-ramen")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(r.Instructions) == 0 {
		t.Fatal("recipe has no instructions")
	}
	if r.Instructions[0].Number != 1 {
		t.Fatalf("instructions should be 1-based, got %d", r.Instructions[0].Number)
	}

	if _, err := src.Get(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

const sampleYAML = `
title: Pan Con Tomate
description: Grated tomato on toasted bread.
servings: 2
tags: [snack]
ingredients:
  - name: bread
    quantity: 4
    unit: slices
  - name: tomatoes
    quantity: 2
    unit: pieces
instructions:
  - text: Toast the bread until golden.
    minutes: 4
  - text: Grate the tomatoes and season with salt and olive oil.
  - text: Spoon the tomato over the toast.
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.Title != "Pan Con Tomate" {
		t.Fatalf("unexpected title %q", r.Title)
	}
	if len(r.Instructions) != 3 {
		t.Fatalf("expected 3 instructions, got %d", len(r.Instructions))
	}
	if r.Instructions[0].Duration != 4*time.Minute {
		t.Fatalf("unexpected duration %s", r.Instructions[0].Duration)
	}
	if r.Instructions[1].Duration != 0 {
		t.Fatal("untimed step should have zero duration")
	}
	if r.Instructions[2].Number != 3 {
		t.Fatalf("expected step number 3, got %d", r.Instructions[2].Number)
	}
}

func TestParseRejectsBadRecipes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no title", "servings: 2\ninstructions:\n  - text: hello\n"},
		{"empty instruction text", "title: X\ninstructions:\n  - text: \"\"\n"},
		{"negative minutes", "title: X\ninstructions:\n  - text: hi\n    minutes: -3\n"},
		{"not yaml", "title: [unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.body)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestLoadDirSkipsBadFiles(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	dir := t.TempDir()

	good := filepath.Join(dir, "tomate.yaml")
	if err := os.WriteFile(good, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	bad := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(bad, []byte("title: [oops\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ignored := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(ignored, []byte("not a recipe"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	recipes, err := LoadDir(dir, log)
	if err != nil {
		t.Fatalf("loaddir: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(recipes))
	}
	if recipes[0].ID != "tomate" {
		t.Fatalf("expected ID from filename, got %q", recipes[0].ID)
	}
}
