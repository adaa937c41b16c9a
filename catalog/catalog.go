// Package catalog holds the static, read-only site content: the showcased
// projects and the owner's profile. Both are loaded once from embedded YAML
// and shared by every view.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Project is one showcased piece of work.
type Project struct {
	Key         string   `yaml:"key"`
	Title       string   `yaml:"title"`
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
	Link        string   `yaml:"link"` // empty when there is no live site yet
}

// HasLink reports whether the project has an external live link.
func (p Project) HasLink() bool {
	return strings.TrimSpace(p.Link) != ""
}

// Catalog is an immutable, ordered mapping of project key to Project.
type Catalog struct {
	order []string
	byKey map[string]Project
}

// Parse decodes a YAML list of projects. Keys must be unique and non-empty
// and every project needs a title.
func Parse(data []byte) (*Catalog, error) {
	var projects []Project
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c := &Catalog{byKey: make(map[string]Project, len(projects))}
	for i, p := range projects {
		p.Key = strings.TrimSpace(p.Key)
		if p.Key == "" {
			return nil, fmt.Errorf("catalog entry %d: key is required", i)
		}
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("catalog entry %q: title is required", p.Key)
		}
		if _, dup := c.byKey[p.Key]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate key", p.Key)
		}
		c.order = append(c.order, p.Key)
		c.byKey[p.Key] = p
	}
	if len(c.order) == 0 {
		return nil, errors.New("catalog is empty")
	}
	return c, nil
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	data, err := dataFS.ReadFile("data/projects.yaml")
	if err != nil {
		panic(fmt.Sprintf("catalog: read embedded projects: %v", err))
	}
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Get looks up a project by key.
func (c *Catalog) Get(key string) (Project, bool) {
	p, ok := c.byKey[key]
	if !ok {
		return Project{}, false
	}
	return clone(p), true
}

// Has reports whether key names a project in the catalog.
func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// Keys returns the project keys in display order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.order...)
}

// Projects returns every project in display order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, clone(c.byKey[k]))
	}
	return out
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.order)
}

func clone(p Project) Project {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}
