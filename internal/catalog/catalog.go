package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muurk/eduportal/internal/state"
)

//go:embed default.yaml
var defaultCatalog []byte

// Tutorial sort orders
const (
	SortPopular = "popular" // Most students first
	SortNewest  = "newest"  // Most recently published first
	SortRating  = "rating"  // Highest rating first
)

// SortOrders lists the tutorial sort orders in display order.
var SortOrders = []string{SortPopular, SortNewest, SortRating}

// SortLabel returns the select label for a sort order.
func SortLabel(order string) string {
	switch order {
	case SortPopular:
		return "Most Popular"
	case SortNewest:
		return "Newest"
	case SortRating:
		return "Highest Rated"
	default:
		return order
	}
}

// AllCategories is the category value that disables filtering.
const AllCategories = "all"

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog, "embedded")
}

// Load reads a catalog from path. An empty path returns the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a YAML catalog. source names it in errors.
func Parse(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}
	if err := c.validate(source); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the catalog can drive every view.
func (c *Catalog) Validate() error {
	return c.validate("catalog")
}

func (c *Catalog) validate(source string) error {
	verr := &ValidationError{Source: source}

	if len(c.NavLinks) == 0 {
		verr.add("nav_links is empty")
	}
	paths := make(map[string]bool)
	for i, l := range c.NavLinks {
		if !strings.HasPrefix(l.Path, "/") {
			verr.add("nav_links[%d]: path %q must start with /", i, l.Path)
		}
		if paths[l.Path] {
			verr.add("nav_links[%d]: duplicate path %q", i, l.Path)
		}
		paths[l.Path] = true
	}

	if len(c.Search.Categories) == 0 {
		verr.add("search.categories is empty")
	}
	if len(c.Home.Tabs) == 0 {
		verr.add("home.tabs is empty")
	}
	if len(c.TutorialCategories) == 0 {
		verr.add("tutorial_categories is empty")
	}

	if len(c.Week.Videos) == 0 {
		verr.add("week.videos is empty")
	}
	sources := make(map[string]bool)
	for i, v := range c.Week.Videos {
		if v.SourceID == "" {
			verr.add("week.videos[%d] (%s): source_id is empty", i, v.Title)
			continue
		}
		if sources[v.SourceID] {
			verr.add("week.videos[%d]: duplicate source_id %q", i, v.SourceID)
		}
		sources[v.SourceID] = true
	}
	if len(c.Week.Checklist) == 0 {
		verr.add("week.checklist is empty")
	}
	if len(c.Week.Questions) == 0 {
		verr.add("week.questions is empty")
	}

	ids := make(map[int]bool)
	for i, t := range c.Week.Todos {
		if ids[t.ID] {
			verr.add("week.todos[%d]: duplicate id %d", i, t.ID)
		}
		ids[t.ID] = true
		if t.ID < 1 || t.ID == math.MaxInt {
			verr.add("week.todos[%d]: id %d out of range", i, t.ID)
		}
		if strings.TrimSpace(t.Text) == "" {
			verr.add("week.todos[%d]: text is empty", i)
		}
		if _, err := state.ParsePriority(t.Priority); err != nil {
			verr.add("week.todos[%d]: %v", i, err)
		}
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

// Instructors returns the distinct instructor names, sorted.
func (c *Catalog) Instructors() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, course := range c.Courses {
		add(course.Instructor)
	}
	for _, t := range c.Tutorials {
		add(t.Instructor)
	}
	sort.Strings(names)
	return names
}

// CoursesInTab returns the courses shown under a home page tab.
// The "all" tab shows every course.
func (c *Catalog) CoursesInTab(tab string) []Course {
	var out []Course
	for _, course := range c.Courses {
		if tab == AllCategories || strings.EqualFold(course.Category, tab) {
			out = append(out, course)
		}
	}
	return out
}

// FilterTutorials returns the tutorials in category, compared case-insensitively.
// The "all" category returns every tutorial.
func (c *Catalog) FilterTutorials(category string) []Tutorial {
	var out []Tutorial
	for _, t := range c.Tutorials {
		if category == "" || category == AllCategories || strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// SortTutorials orders tutorials in place. Unknown orders keep catalog order.
// Ties keep their relative order.
func SortTutorials(tutorials []Tutorial, order string) {
	switch order {
	case SortPopular:
		sort.SliceStable(tutorials, func(i, j int) bool {
			return tutorials[i].Students > tutorials[j].Students
		})
	case SortNewest:
		sort.SliceStable(tutorials, func(i, j int) bool {
			return tutorials[i].Published.After(tutorials[j].Published)
		})
	case SortRating:
		sort.SliceStable(tutorials, func(i, j int) bool {
			return tutorials[i].Rating > tutorials[j].Rating
		})
	}
}

// Link returns the nav link for path.
func (c *Catalog) Link(path string) (NavLink, bool) {
	for _, l := range c.NavLinks {
		if l.Path == path {
			return l, true
		}
	}
	return NavLink{}, false
}
