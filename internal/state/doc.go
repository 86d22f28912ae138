// Package state holds the view-state types of the week-one course content.
//
// Every type here is a plain value paired with pure transition functions.
// A transition never mutates its receiver; it returns the next state, so
// the rendering layer can keep the previous value around and the logic can
// be tested without any UI harness.
//
// # Toggling
//
// Panels, media playback and checklist membership are all "on/off state tied
// to a key", so they share one implementation:
//
//	ToggleSet[K]   set of keys currently on
//	Switch         ToggleSet over a single implicit key (panel, playback)
//
// # Error Handling
//
// The only error raised by this package is *IndexError, returned when a
// checklist toggle names an index outside the label list. Everything else
// that looks like bad input (blank todo text, unknown todo id, toggling a
// locked video) is a silent no-op that returns the input state unchanged.
//
// # Thread Safety
//
// Values are immutable once built and may be shared freely. Each mounted
// view owns its states exclusively.
package state
