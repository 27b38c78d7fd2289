package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/logger"
)

// recipeFile is the YAML shape of a user recipe.
type recipeFile struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Servings    int      `yaml:"servings"`
	Tags        []string `yaml:"tags"`
	Ingredients []struct {
		Name     string  `yaml:"name"`
		Quantity float64 `yaml:"quantity"`
		Unit     string  `yaml:"unit"`
		Optional bool    `yaml:"optional"`
	} `yaml:"ingredients"`
	Instructions []struct {
		Text    string `yaml:"text"`
		Minutes int    `yaml:"minutes"`
	} `yaml:"instructions"`
}

// LoadDir parses every .yaml/.yml file in dir into recipes. Files that
// fail to parse are logged and skipped; one bad file should not take
// down the whole catalogue.
func LoadDir(dir string, log *logger.Logger) ([]*domain.Recipe, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading recipes dir: %w", err)
	}

	var out []*domain.Recipe
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("recipe: reading %s: %v", path, err)
			continue
		}
		r, err := Parse(data)
		if err != nil {
			log.Warn("recipe: skipping %s: %v", path, err)
			continue
		}
		if r.ID == "" {
			r.ID = strings.TrimSuffix(e.Name(), ext)
		}
		out = append(out, r)
		log.Debug("recipe: loaded %s (%d steps)", r.ID, len(r.Instructions))
	}
	return out, nil
}

// Parse decodes one YAML recipe document.
func Parse(data []byte) (*domain.Recipe, error) {
	var rf recipeFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing recipe: %w", err)
	}
	if rf.Title == "" {
		return nil, fmt.Errorf("recipe has no title")
	}

	r := &domain.Recipe{
		ID:          rf.ID,
		Title:       rf.Title,
		Description: rf.Description,
		Servings:    rf.Servings,
		Tags:        rf.Tags,
	}
	for _, ing := range rf.Ingredients {
		r.Ingredients = append(r.Ingredients, domain.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Optional: ing.Optional,
		})
	}
	for i, in := range rf.Instructions {
		if strings.TrimSpace(in.Text) == "" {
			return nil, fmt.Errorf("instruction %d has no text", i+1)
		}
		if in.Minutes < 0 {
			return nil, fmt.Errorf("instruction %d has negative minutes", i+1)
		}
		r.Instructions = append(r.Instructions, domain.Instruction{
			Number:   i + 1,
			Text:     in.Text,
			Duration: time.Duration(in.Minutes) * time.Minute,
		})
	}
	return r, nil
}
