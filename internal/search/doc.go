// Package search implements the portal search bar: a term, a category, a
// filter panel and the list of recent searches.
//
// Run ranks catalog courses, tutorials and instructors against a term.
// Titles and instructor names are matched as fuzzy subsequences
// (github.com/sahilm/fuzzy) and descriptions by substring; title hits always
// rank above instructor hits, which rank above description hits. When a term
// matches nothing, Suggest offers the nearest title or name by Levenshtein
// distance.
//
// Filters apply before ranking. Instructors have no level or rating of their
// own, so an instructor appears only while at least one of their courses or
// tutorials passes the filters.
//
// The filter Panel separates the draft being edited from the applied
// filters; a query only ever sees Applied.
package search
