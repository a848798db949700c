package portfolio

import (
	"fmt"
	"sort"
)

type Project struct {
	Title       string `json:"title" koanf:"title" yaml:"title"`
	Description string `json:"description" koanf:"description" yaml:"description"`
	VideoURL    string `json:"videoUrl" koanf:"video_url" yaml:"video_url"`
	DetailsURL  string `json:"detailsUrl" koanf:"details_url" yaml:"details_url"`
	Index       int    `json:"index" koanf:"index" yaml:"index"`
	Featured    bool   `json:"featured" koanf:"featured" yaml:"featured"`
}

// Catalog is the immutable, index-ordered list of projects loaded at startup.
type Catalog struct {
	projects []Project
	byIndex  map[int]int
}

func NewCatalog(projects []Project) (*Catalog, error) {
	sorted := make([]Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	byIndex := make(map[int]int, len(sorted))
	for pos, p := range sorted {
		if _, dup := byIndex[p.Index]; dup {
			return nil, fmt.Errorf("duplicate project index %d", p.Index)
		}
		byIndex[p.Index] = pos
	}

	return &Catalog{projects: sorted, byIndex: byIndex}, nil
}

func (c *Catalog) All() []Project {
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Featured returns exactly the projects flagged featured, in ascending index order.
func (c *Catalog) Featured() []Project {
	out := make([]Project, 0, len(c.projects))
	for _, p := range c.projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ByIndex(index int) (Project, bool) {
	pos, ok := c.byIndex[index]
	if !ok {
		return Project{}, false
	}
	return c.projects[pos], true
}

func (c *Catalog) Len() int { return len(c.projects) }
