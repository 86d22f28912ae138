// Package urls provides centralized constants for the external URLs the
// portal renders or opens.
//
// Keeping them in one place lets the embed host or documentation site move
// without hunting through views.
//
// Usage:
//
//	import "github.com/muurk/eduportal/internal/urls"
//
//	link := urls.Embed("qz0aGYrrlhU")
package urls
