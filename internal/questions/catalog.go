package questions

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is an ordered, ID-unique list of question definitions.
type Catalog struct {
	questions []Definition
	index     map[string]int
}

// NewCatalog validates defs and builds a catalog preserving their order.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		questions: make([]Definition, 0, len(defs)),
		index:     make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		d.ID = strings.TrimSpace(d.ID)
		if d.ID == "" {
			return nil, fmt.Errorf("question %d: id is required", i+1)
		}
		if _, dup := c.index[d.ID]; dup {
			return nil, fmt.Errorf("question %q: duplicate id", d.ID)
		}
		if err := ValidateType(d.Type); err != nil {
			return nil, fmt.Errorf("question %q: %w", d.ID, err)
		}
		if err := ValidateCategory(d.Category); err != nil {
			return nil, fmt.Errorf("question %q: %w", d.ID, err)
		}
		if d.Type == TypeSelect && len(d.Options) == 0 {
			return nil, fmt.Errorf("question %q: SELECT requires options", d.ID)
		}
		if d.Type != TypeSelect && len(d.Options) > 0 {
			return nil, fmt.Errorf("question %q: options are only allowed on SELECT", d.ID)
		}
		c.index[d.ID] = len(c.questions)
		c.questions = append(c.questions, d)
	}
	return c, nil
}

// catalogFile is the on-disk YAML shape of a catalog.
type catalogFile struct {
	Questions []Definition `yaml:"questions"`
}

// Load reads a YAML catalog:
//
//	questions:
//	  - id: namaz
//	    label: Namaz Prayed (0-5)
//	    type: NUMBER
//	    category: discipline
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("parse catalog: no questions defined")
	}
	return NewCatalog(f.Questions)
}

// All returns the definitions in catalog order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.questions))
	copy(out, c.questions)
	return out
}

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// Get looks up a definition by ID.
func (c *Catalog) Get(id string) (Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, false
	}
	return c.questions[i], true
}

// IDs returns all question IDs in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.questions))
	for i, q := range c.questions {
		ids[i] = q.ID
	}
	return ids
}

// ByCategory returns the questions of one category in catalog order.
func (c *Catalog) ByCategory(cat Category) []Definition {
	var out []Definition
	for _, q := range c.questions {
		if q.Category == cat {
			out = append(out, q)
		}
	}
	return out
}

// Categories returns the distinct categories in first-appearance order.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]bool)
	var out []Category
	for _, q := range c.questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}

// ShutdownIDs returns the IDs of the shutdown ritual questions.
func (c *Catalog) ShutdownIDs() []string {
	var ids []string
	for _, q := range c.ByCategory(CategoryShutdown) {
		ids = append(ids, q.ID)
	}
	return ids
}
