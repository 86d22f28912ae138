package state

// ToggleSet is an immutable set of keys that are currently "on".
// The zero value is an empty set ready to use.
type ToggleSet[K comparable] struct {
	on map[K]struct{}
}

// NewToggleSet returns a set with the given keys switched on.
func NewToggleSet[K comparable](keys ...K) ToggleSet[K] {
	s := ToggleSet[K]{on: make(map[K]struct{}, len(keys))}
	for _, k := range keys {
		s.on[k] = struct{}{}
	}
	return s
}

// Has reports whether k is on.
func (s ToggleSet[K]) Has(k K) bool {
	_, ok := s.on[k]
	return ok
}

// Len returns the number of keys that are on.
func (s ToggleSet[K]) Len() int {
	return len(s.on)
}

// Toggle returns a copy of s with the membership of k flipped.
func (s ToggleSet[K]) Toggle(k K) ToggleSet[K] {
	next := ToggleSet[K]{on: make(map[K]struct{}, len(s.on)+1)}
	for key := range s.on {
		next.on[key] = struct{}{}
	}
	if _, ok := next.on[k]; ok {
		delete(next.on, k)
	} else {
		next.on[k] = struct{}{}
	}
	return next
}

// Keys returns the keys that are on, in no particular order.
func (s ToggleSet[K]) Keys() []K {
	keys := make([]K, 0, len(s.on))
	for k := range s.on {
		keys = append(keys, k)
	}
	return keys
}

// Equal reports whether both sets hold exactly the same keys.
func (s ToggleSet[K]) Equal(other ToggleSet[K]) bool {
	if len(s.on) != len(other.on) {
		return false
	}
	for k := range s.on {
		if _, ok := other.on[k]; !ok {
			return false
		}
	}
	return true
}

// Switch is a ToggleSet of cardinality at most one: on or off.
type Switch struct {
	set ToggleSet[struct{}]
}

// NewSwitch returns a switch in the given position.
func NewSwitch(on bool) Switch {
	if on {
		return Switch{set: NewToggleSet(struct{}{})}
	}
	return Switch{}
}

// On reports whether the switch is on.
func (s Switch) On() bool {
	return s.set.Has(struct{}{})
}

// Toggle returns the switch in the opposite position.
func (s Switch) Toggle() Switch {
	return Switch{set: s.set.Toggle(struct{}{})}
}

// Equal reports whether both switches are in the same position.
func (s Switch) Equal(other Switch) bool {
	return s.On() == other.On()
}
