// Package player is the media-embedding side of the portal.
//
// A Registry mounts one Frame per source id when a lesson video is opened and
// tears it down when the lesson is closed or its view goes away. A mounted
// frame knows its embed URL (urls.Embed) and can render itself as a
// placeholder box; CopyLink puts that URL on the system clipboard so it can
// be opened in a browser.
//
// The registry is owned by a single Bubble Tea model and, like the rest of
// the update loop, is used from one goroutine only. The clipboard write runs
// as a tea.Cmd and reports back with CopiedMsg.
package player
