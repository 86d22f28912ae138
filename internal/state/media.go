package state

// MediaReference describes one playable catalog entry.
// It is immutable after creation.
type MediaReference struct {
	Title         string
	DurationLabel string
	SourceID      string
	Locked        bool
}

// PlaybackState tracks whether the player for a reference is shown.
type PlaybackState struct {
	visible Switch
}

// Visible reports whether the player is revealed.
func (p PlaybackState) Visible() bool {
	return p.visible.On()
}

// Equal reports whether both states show (or hide) the player.
func (p PlaybackState) Equal(other PlaybackState) bool {
	return p.visible.Equal(other.visible)
}

// NewMediaItem builds a reference together with its hidden playback state.
func NewMediaItem(title, durationLabel, sourceID string, locked bool) (MediaReference, PlaybackState) {
	ref := MediaReference{
		Title:         title,
		DurationLabel: durationLabel,
		SourceID:      sourceID,
		Locked:        locked,
	}
	return ref, PlaybackState{}
}

// RequestToggle flips player visibility. Locked references keep st as is.
func RequestToggle(ref MediaReference, st PlaybackState) PlaybackState {
	if ref.Locked {
		return st
	}
	st.visible = st.visible.Toggle()
	return st
}
