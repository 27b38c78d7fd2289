// Package domain defines the core types and interfaces for cooking mode.
// All other packages depend on domain; domain depends on nothing.
package domain

import "time"

// Recipe represents a complete cooking recipe.
type Recipe struct {
	ID           string
	Title        string
	Description  string
	Servings     int
	Ingredients  []Ingredient
	Instructions []Instruction
	Tags         []string
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID          string
	Title       string
	Description string
	Steps       int
	Tags        []string
}

// Ingredient represents a single ingredient with human-style quantities.
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string // "pieces", "cups", "tablespoons", "grams", ""
	Optional bool
}

// Instruction is a single cooking step. The instruction list is immutable
// for the lifetime of one cooking-mode mount; its length fixes the bounds
// of step navigation. An empty list is a valid, explicitly-handled state.
type Instruction struct {
	Number   int // 1-based step number
	Text     string
	Duration time.Duration // expected duration, 0 if untimed
}
