package registry

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

// Category is one entry of the keyword registry.
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// CategoryRegistry is the ordered keyword table used by the classifier.
// Declaration order is the tie-break when a description matches more than
// one category.
type CategoryRegistry struct {
	categories []Category
}

// NewCategoryRegistry validates and normalizes the given categories.
// Keywords are lower-cased and trimmed; the catch-all category is appended
// when missing.
func NewCategoryRegistry(categories []Category) (*CategoryRegistry, error) {
	seen := make(map[string]bool, len(categories))
	out := make([]Category, 0, len(categories)+1)
	hasOther := false

	for i, c := range categories {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			return nil, eris.Errorf("registry: category %d has no name", i)
		}
		if seen[name] {
			return nil, eris.Errorf("registry: duplicate category %q", name)
		}
		seen[name] = true

		keywords := normalizeKeywords(c.Keywords)
		if name == model.CategoryOther {
			if len(keywords) > 0 {
				return nil, eris.Errorf("registry: catch-all category %q cannot carry keywords", name)
			}
			hasOther = true
		}
		out = append(out, Category{Name: name, Keywords: keywords})
	}

	if !hasOther {
		out = append(out, Category{Name: model.CategoryOther})
	}

	return &CategoryRegistry{categories: out}, nil
}

// Categories returns a copy of the registry in declaration order.
func (r *CategoryRegistry) Categories() []Category {
	out := make([]Category, len(r.categories))
	for i, c := range r.categories {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}

// Names returns the category labels in declaration order.
func (r *CategoryRegistry) Names() []string {
	names := make([]string, len(r.categories))
	for i, c := range r.categories {
		names[i] = c.Name
	}
	return names
}

// LoadCategoriesFromFile reads an ordered category list from a YAML file.
// The file holds a top-level "categories" sequence of {name, keywords}.
func LoadCategoriesFromFile(path string) (*CategoryRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: read categories %s", path)
	}

	var wrapper struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "registry: parse categories")
	}
	if len(wrapper.Categories) == 0 {
		return nil, eris.Errorf("registry: %s defines no categories", path)
	}

	return NewCategoryRegistry(wrapper.Categories)
}

// Load returns the registry at path, or the built-in default when path is
// empty.
func Load(path string) (*CategoryRegistry, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadCategoriesFromFile(path)
}

func normalizeKeywords(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, k := range in {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
