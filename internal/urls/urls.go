package urls

import "net/url"

// EmbedBase is the host path every lesson player is embedded from.
// A source id is appended as the final path segment.
const EmbedBase = "https://www.youtube.com/embed/"

// Repository is the project home shown in the footer and `version` output.
const Repository = "https://github.com/muurk/eduportal"

// Documentation is the user guide linked from the Help placeholder page.
const Documentation = "https://muurk.github.io/eduportal/"

// Embed returns the embeddable player address for a source id.
// The id is path-escaped so a catalog typo cannot smuggle a query string.
func Embed(sourceID string) string {
	return EmbedBase + url.PathEscape(sourceID)
}
