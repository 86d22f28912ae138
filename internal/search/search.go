package search

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"

	"github.com/muurk/eduportal/internal/catalog"
)

// Search categories, matching the chips under the search input.
const (
	CategoryAll         = "all"
	CategoryCourses     = "courses"
	CategoryTutorials   = "tutorials"
	CategoryInstructors = "instructors"
)

// Categories lists the search categories in chip order.
var Categories = []string{CategoryAll, CategoryCourses, CategoryTutorials, CategoryInstructors}

// Kind is the type of catalog entry a result points at.
type Kind string

const (
	KindCourse     Kind = "course"
	KindTutorial   Kind = "tutorial"
	KindInstructor Kind = "instructor"
)

// Score tiers keep title hits above instructor hits above description hits
// whatever the fuzzy score within a tier.
const (
	titleTier       = 1000
	instructorTier  = 500
	descriptionTier = 0
)

// Result is one search hit.
type Result struct {
	Kind       Kind    `json:"kind"`
	ID         int     `json:"id,omitempty"`
	Title      string  `json:"title"`
	Detail     string  `json:"detail"`
	Instructor string  `json:"instructor,omitempty"`
	Level      string  `json:"level,omitempty"`
	Duration   string  `json:"duration,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	Score      int     `json:"score"`

	// Matched holds the indexes of the Title characters that matched the term.
	Matched []int `json:"-"`

	description string
	order       int
}

// Query is a submitted search.
type Query struct {
	Term     string  `json:"term"`
	Category string  `json:"category"`
	Filters  Filters `json:"filters"`
}

// Outcome is the answer to a Query.
type Outcome struct {
	Query   Query    `json:"query"`
	Results []Result `json:"results"`

	// Suggestion is the closest catalog title or instructor name when the
	// term matched nothing.
	Suggestion string `json:"suggestion,omitempty"`
}

// Run searches the catalog. An empty term lists every entry of the category
// that passes the filters, in catalog order.
func Run(c *catalog.Catalog, q Query) (Outcome, error) {
	if q.Category == "" {
		q.Category = CategoryAll
	}
	if !slices.Contains(Categories, q.Category) {
		return Outcome{}, fmt.Errorf("unknown search category %q (expected one of %s)",
			q.Category, strings.Join(Categories, ", "))
	}
	if q.Filters == (Filters{}) {
		q.Filters = DefaultFilters()
	}
	if err := q.Filters.Validate(); err != nil {
		return Outcome{}, err
	}
	q.Term = strings.TrimSpace(q.Term)

	cands := candidates(c, q)
	out := Outcome{Query: q}

	if q.Term == "" {
		out.Results = cands
		return out, nil
	}

	for _, r := range cands {
		if scored, ok := score(q.Term, r); ok {
			out.Results = append(out.Results, scored)
		}
	}
	sort.SliceStable(out.Results, func(i, j int) bool {
		if out.Results[i].Score != out.Results[j].Score {
			return out.Results[i].Score > out.Results[j].Score
		}
		return out.Results[i].order < out.Results[j].order
	})

	if len(out.Results) == 0 {
		out.Suggestion = Suggest(c, q.Term)
	}
	return out, nil
}

func score(term string, r Result) (Result, bool) {
	best, found := 0, false

	if m := fuzzy.Find(term, []string{r.Title}); len(m) > 0 {
		best, found = titleTier+m[0].Score, true
		r.Matched = m[0].MatchedIndexes
	}
	if r.Instructor != "" && !found {
		if m := fuzzy.Find(term, []string{r.Instructor}); len(m) > 0 {
			best, found = instructorTier+m[0].Score, true
		}
	}
	if !found && strings.Contains(strings.ToLower(r.description), strings.ToLower(term)) {
		best, found = descriptionTier, true
	}

	r.Score = best
	return r, found
}

func candidates(c *catalog.Catalog, q Query) []Result {
	var out []Result
	add := func(r Result) {
		r.order = len(out)
		out = append(out, r)
	}

	wantCourses := q.Category == CategoryAll || q.Category == CategoryCourses
	wantTutorials := q.Category == CategoryAll || q.Category == CategoryTutorials
	wantInstructors := q.Category == CategoryAll || q.Category == CategoryInstructors

	// Instructors qualify through the courses and tutorials that pass the filters.
	teaches := make(map[string][2]int)

	for _, course := range c.Courses {
		if !q.Filters.Match(course.Level, course.Hours, course.Rating) {
			continue
		}
		n := teaches[course.Instructor]
		n[0]++
		teaches[course.Instructor] = n
		if wantCourses {
			add(Result{
				Kind:        KindCourse,
				ID:          course.ID,
				Title:       course.Title,
				Detail:      course.Description,
				Instructor:  course.Instructor,
				Level:       course.Level,
				Duration:    course.Duration,
				Rating:      course.Rating,
				description: course.Description,
			})
		}
	}

	for _, t := range c.Tutorials {
		if !q.Filters.Match(t.Level, t.Hours, t.Rating) {
			continue
		}
		n := teaches[t.Instructor]
		n[1]++
		teaches[t.Instructor] = n
		if wantTutorials {
			add(Result{
				Kind:        KindTutorial,
				ID:          t.ID,
				Title:       t.Title,
				Detail:      t.Description,
				Instructor:  t.Instructor,
				Level:       t.Level,
				Duration:    t.Duration,
				Rating:      t.Rating,
				description: t.Description,
			})
		}
	}

	if wantInstructors {
		for _, name := range c.Instructors() {
			n, ok := teaches[name]
			if !ok {
				continue
			}
			add(Result{
				Kind:   KindInstructor,
				Title:  name,
				Detail: fmt.Sprintf("%s, %s", plural(n[0], "course"), plural(n[1], "tutorial")),
			})
		}
	}
	return out
}

// Suggest returns the catalog title or instructor name closest to term by
// edit distance, or "" when nothing is close enough to be a likely typo.
func Suggest(c *catalog.Catalog, term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return ""
	}

	var names []string
	for _, course := range c.Courses {
		names = append(names, course.Title)
	}
	for _, t := range c.Tutorials {
		names = append(names, t.Title)
	}
	names = append(names, c.Instructors()...)

	// Compare against whole names and their single words so "javscript"
	// can still find "Modern JavaScript Fundamentals".
	best, bestDist := "", -1
	for _, name := range names {
		for _, cand := range append([]string{name}, strings.Fields(name)...) {
			d := levenshtein.ComputeDistance(term, strings.ToLower(cand))
			if bestDist < 0 || d < bestDist {
				best, bestDist = name, d
			}
		}
	}

	if bestDist < 0 || bestDist > maxTypos(term) {
		return ""
	}
	return best
}

func maxTypos(term string) int {
	if n := len([]rune(term)) / 3; n > 2 {
		return n
	}
	return 2
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
