// Package recipe provides recipe source implementations.
package recipe

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds recipes in memory. Safe for concurrent use.
type MemorySource struct {
	mu      sync.RWMutex
	recipes map[string]*domain.Recipe
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with built-in
// recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{
		recipes: make(map[string]*domain.Recipe),
		log:     log,
	}
	src.seed()
	return src
}

// List returns summaries of all available recipes, sorted by title.
func (s *MemorySource) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.RecipeSummary, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, domain.RecipeSummary{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Steps:       len(r.Instructions),
			Tags:        r.Tags,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// Get returns a recipe by ID.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Add registers a recipe, replacing any existing one with the same ID.
func (s *MemorySource) Add(r *domain.Recipe) {
	s.mu.Lock()
	s.recipes[r.ID] = r
	s.mu.Unlock()
	s.log.Debug("recipe added: %s (%d steps)", r.ID, len(r.Instructions))
}

// seed loads the built-in recipes.
func (s *MemorySource) seed() {
	s.recipes["weeknight-ramen"] = &domain.Recipe{
		ID:          "weeknight-ramen",
		Title:       "Weeknight Ramen",
		Description: "Upgraded instant ramen with a soft egg and greens.",
		Servings:    2,
		Tags:        []string{"quick", "noodles"},
		Ingredients: []domain.Ingredient{
			{Name: "instant ramen", Quantity: 2, Unit: "packets"},
			{Name: "eggs", Quantity: 2, Unit: "pieces"},
			{Name: "baby spinach", Quantity: 2, Unit: "handfuls"},
			{Name: "scallions", Quantity: 2, Unit: "pieces", Optional: true},
			{Name: "sesame oil", Quantity: 1, Unit: "teaspoons", Optional: true},
		},
		Instructions: []domain.Instruction{
			{Number: 1, Text: "Bring a small pot of water to a rolling boil for the eggs.", Duration: 5 * time.Minute},
			{Number: 2, Text: "Lower the eggs in gently and cook for six and a half minutes, then move them to cold water.", Duration: 7 * time.Minute},
			{Number: 3, Text: "Meanwhile, bring the broth water to a boil in a second pot and add the seasoning."},
			{Number: 4, Text: "Add the noodles and cook until just tender.", Duration: 3 * time.Minute},
			{Number: 5, Text: "Stir in the spinach and let it wilt off the heat."},
			{Number: 6, Text: "Peel and halve the eggs, slice the scallions, and top each bowl. Finish with sesame oil."},
		},
	}

	s.recipes["one-pan-shakshuka"] = &domain.Recipe{
		ID:          "one-pan-shakshuka",
		Title:       "One-Pan Shakshuka",
		Description: "Eggs poached in a spiced tomato and pepper sauce.",
		Servings:    2,
		Tags:        []string{"vegetarian", "brunch"},
		Ingredients: []domain.Ingredient{
			{Name: "olive oil", Quantity: 2, Unit: "tablespoons"},
			{Name: "onion", Quantity: 1, Unit: "pieces"},
			{Name: "red bell pepper", Quantity: 1, Unit: "pieces"},
			{Name: "garlic cloves", Quantity: 3, Unit: "pieces"},
			{Name: "crushed tomatoes", Quantity: 800, Unit: "grams"},
			{Name: "ground cumin", Quantity: 1, Unit: "teaspoons"},
			{Name: "smoked paprika", Quantity: 1, Unit: "teaspoons"},
			{Name: "eggs", Quantity: 4, Unit: "pieces"},
			{Name: "feta", Quantity: 60, Unit: "grams", Optional: true},
		},
		Instructions: []domain.Instruction{
			{Number: 1, Text: "Dice the onion and pepper, and mince the garlic."},
			{Number: 2, Text: "Warm the olive oil in a wide pan and soften the onion and pepper.", Duration: 6 * time.Minute},
			{Number: 3, Text: "Stir in the garlic, cumin, and paprika until fragrant.", Duration: time.Minute},
			{Number: 4, Text: "Pour in the tomatoes, season, and simmer until slightly thickened.", Duration: 10 * time.Minute},
			{Number: 5, Text: "Make four wells in the sauce and crack an egg into each."},
			{Number: 6, Text: "Cover and cook until the whites are set but the yolks still jiggle.", Duration: 6 * time.Minute},
			{Number: 7, Text: "Crumble the feta over the top and serve straight from the pan."},
		},
	}
}
