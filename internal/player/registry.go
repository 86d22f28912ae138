package player

import (
	"slices"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/eduportal/internal/logging"
	"github.com/muurk/eduportal/internal/state"
	"github.com/muurk/eduportal/internal/urls"
)

// Embedder mounts and tears down players keyed by source id.
type Embedder interface {
	Mount(ref state.MediaReference) error
	Unmount(sourceID string)
}

// Frame is one mounted player.
type Frame struct {
	SourceID  string
	Title     string
	Duration  string
	URL       string
	MountedAt time.Time
}

// Registry is the in-process Embedder. It is owned by one view and is not
// safe for concurrent use, matching the single-threaded update loop.
type Registry struct {
	frames map[string]Frame
	order  []string

	// Clipboard writes text to the system clipboard (nil = atotto/clipboard)
	Clipboard func(string) error

	now func() time.Time
}

var _ Embedder = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		frames: make(map[string]Frame),
		now:    time.Now,
	}
}

// Mount creates the player for ref. Mounting an already mounted source is a
// no-op; locked references are refused with *LockedError.
func (r *Registry) Mount(ref state.MediaReference) error {
	if ref.Locked {
		return &LockedError{SourceID: ref.SourceID, Title: ref.Title}
	}
	if _, ok := r.frames[ref.SourceID]; ok {
		return nil
	}

	r.frames[ref.SourceID] = Frame{
		SourceID:  ref.SourceID,
		Title:     ref.Title,
		Duration:  ref.DurationLabel,
		URL:       urls.Embed(ref.SourceID),
		MountedAt: r.now(),
	}
	r.order = append(r.order, ref.SourceID)
	logging.LogPlayer("mount", ref.SourceID)
	return nil
}

// Unmount tears down the player for sourceID, if any.
func (r *Registry) Unmount(sourceID string) {
	if _, ok := r.frames[sourceID]; !ok {
		return
	}
	delete(r.frames, sourceID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == sourceID })
	logging.LogPlayer("unmount", sourceID)
}

// UnmountAll tears down every player, newest first.
func (r *Registry) UnmountAll() {
	for i := len(r.order) - 1; i >= 0; i-- {
		r.Unmount(r.order[i])
	}
}

// Frame returns the mounted player for sourceID.
func (r *Registry) Frame(sourceID string) (Frame, bool) {
	f, ok := r.frames[sourceID]
	return f, ok
}

// IsMounted reports whether a player exists for sourceID.
func (r *Registry) IsMounted(sourceID string) bool {
	_, ok := r.frames[sourceID]
	return ok
}

// Mounted returns the mounted players in mount order.
func (r *Registry) Mounted() []Frame {
	out := make([]Frame, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.frames[id])
	}
	return out
}

// Len returns the number of mounted players.
func (r *Registry) Len() int {
	return len(r.order)
}

// CopiedMsg reports the outcome of CopyLink.
type CopiedMsg struct {
	SourceID string
	URL      string
	Err      error
}

// CopyLink returns a command that copies the embed link of a mounted player.
// Copying for a source with no player reports an error rather than copying
// a link to something the learner cannot see.
func (r *Registry) CopyLink(sourceID string) tea.Cmd {
	f, ok := r.frames[sourceID]
	write := r.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	return func() tea.Msg {
		if !ok {
			return CopiedMsg{SourceID: sourceID, Err: &ClipboardError{URL: urls.Embed(sourceID), Err: errNotMounted}}
		}
		if err := write(f.URL); err != nil {
			logging.Warn("Clipboard unavailable")
			return CopiedMsg{SourceID: sourceID, URL: f.URL, Err: &ClipboardError{URL: f.URL, Err: err}}
		}
		logging.LogPlayer("copy", sourceID)
		return CopiedMsg{SourceID: sourceID, URL: f.URL}
	}
}
