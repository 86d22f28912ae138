package catalog

import (
	"fmt"
	"time"

	"github.com/muurk/eduportal/internal/state"
)

// Catalog is the full static content of the portal.
type Catalog struct {
	Brand              string     `yaml:"brand" json:"brand"`
	Notifications      int        `yaml:"notifications" json:"notifications"`
	NavLinks           []NavLink  `yaml:"nav_links" json:"nav_links"`
	Search             Search     `yaml:"search" json:"search"`
	Home               Home       `yaml:"home" json:"home"`
	Courses            []Course   `yaml:"courses" json:"courses"`
	TutorialCategories []string   `yaml:"tutorial_categories" json:"tutorial_categories"`
	Tutorials          []Tutorial `yaml:"tutorials" json:"tutorials"`
	Week               Week       `yaml:"week" json:"week"`
}

// NavLink is one navbar entry.
type NavLink struct {
	Path  string `yaml:"path" json:"path"`   // Route path, e.g. "/week-one"
	Label string `yaml:"label" json:"label"` // Display text
	Icon  string `yaml:"icon" json:"icon"`   // Single glyph shown before the label
}

// Search holds the search bar content.
type Search struct {
	Categories     []SearchCategory `yaml:"categories" json:"categories"`
	RecentSearches []string         `yaml:"recent_searches" json:"recent_searches"`
}

// SearchCategory is one of the category chips under the search input.
type SearchCategory struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Home holds the marketing page copy.
type Home struct {
	HeroTitle    string   `yaml:"hero_title" json:"hero_title"`
	HeroSubtitle string   `yaml:"hero_subtitle" json:"hero_subtitle"`
	HeroAction   string   `yaml:"hero_action" json:"hero_action"`
	CTATitle     string   `yaml:"cta_title" json:"cta_title"`
	CTASubtitle  string   `yaml:"cta_subtitle" json:"cta_subtitle"`
	CTAAction    string   `yaml:"cta_action" json:"cta_action"`
	Tabs         []string `yaml:"tabs" json:"tabs"`
	Stats        []Stat   `yaml:"stats" json:"stats"`
}

// Stat is a headline number on the home page.
type Stat struct {
	Icon  string `yaml:"icon" json:"icon"`
	Title string `yaml:"title" json:"title"`
	Value string `yaml:"value" json:"value"`
}

// Course is a featured course card.
type Course struct {
	ID          int     `yaml:"id" json:"id"`
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description"`
	Category    string  `yaml:"category" json:"category"` // Home tab, e.g. "development"
	Level       string  `yaml:"level" json:"level"`       // Beginner, Intermediate or Advanced
	Duration    string  `yaml:"duration" json:"duration"` // Display label, e.g. "12 weeks"
	Hours       float64 `yaml:"hours" json:"hours"`       // Total content hours, used by duration filters
	Rating      float64 `yaml:"rating" json:"rating"`
	Instructor  string  `yaml:"instructor" json:"instructor"`
}

// Tutorial is a tutorial card.
type Tutorial struct {
	ID          int       `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description"`
	Category    string    `yaml:"category" json:"category"`
	Level       string    `yaml:"level" json:"level"`
	Duration    string    `yaml:"duration" json:"duration"`
	Hours       float64   `yaml:"hours" json:"hours"`
	Rating      float64   `yaml:"rating" json:"rating"`
	Students    int       `yaml:"students" json:"students"`
	Published   time.Time `yaml:"published" json:"published"`
	Instructor  string    `yaml:"instructor" json:"instructor"`
}

// Week is the content of one course week.
type Week struct {
	Title        string     `yaml:"title" json:"title"`
	ContentHours int        `yaml:"content_hours" json:"content_hours"`
	Rating       float64    `yaml:"rating" json:"rating"`
	Objectives   []string   `yaml:"objectives" json:"objectives"`
	NotesFile    string     `yaml:"notes_file" json:"notes_file"`
	Videos       []Video    `yaml:"videos" json:"videos"`
	Questions    []Question `yaml:"questions" json:"questions"`
	Checklist    []string   `yaml:"checklist" json:"checklist"`
	Todos        []Todo     `yaml:"todos" json:"todos"`
}

// Video is a week video entry.
type Video struct {
	Title    string `yaml:"title" json:"title"`
	Duration string `yaml:"duration" json:"duration"`
	SourceID string `yaml:"source_id" json:"source_id"`
	Locked   bool   `yaml:"locked,omitempty" json:"locked,omitempty"`
}

// Question is a question asked in class with its answer.
type Question struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Todo is a seed entry for the week todo list.
type Todo struct {
	ID       int    `yaml:"id" json:"id"`
	Text     string `yaml:"text" json:"text"`
	Priority string `yaml:"priority" json:"priority"`
}

// Reference converts the video into the immutable media reference.
func (v Video) Reference() state.MediaReference {
	ref, _ := state.NewMediaItem(v.Title, v.Duration, v.SourceID, v.Locked)
	return ref
}

// References returns the media references of all week videos, in order.
func (w Week) References() []state.MediaReference {
	refs := make([]state.MediaReference, 0, len(w.Videos))
	for _, v := range w.Videos {
		refs = append(refs, v.Reference())
	}
	return refs
}

// TodoList builds the seeded todo list for the week.
func (w Week) TodoList() (state.TodoList, error) {
	items := make([]state.TodoItem, 0, len(w.Todos))
	for _, t := range w.Todos {
		p, err := state.ParsePriority(t.Priority)
		if err != nil {
			return state.TodoList{}, fmt.Errorf("todo %d: %w", t.ID, err)
		}
		items = append(items, state.TodoItem{ID: t.ID, Text: t.Text, Priority: p})
	}
	return state.NewTodoList(items...)
}

// NewChecklist builds an empty checklist over the week labels.
func (w Week) NewChecklist() state.ChecklistState {
	return state.NewChecklist(w.Checklist)
}
