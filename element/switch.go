package element

// Switch shows exactly one of its children at a time.
type Switch struct {
	Children []Object

	// Active selects the visible child. Reads go through ActiveIndex,
	// which clamps out-of-range values.
	Active int
}

// ActiveIndex returns the index of the visible child, clamped into range.
// An empty switch pins the index at zero.
func (s Switch) ActiveIndex() int {
	n := len(s.Children)
	switch {
	case n == 0 || s.Active < 0:
		return 0
	case s.Active >= n:
		return n - 1
	}
	return s.Active
}

// SwitchTo makes child i visible. Out-of-range indexes clamp to the
// nearest valid index.
func (s *Switch) SwitchTo(i int) {
	n := len(s.Children)
	switch {
	case n == 0 || i < 0:
		i = 0
	case i >= n:
		i = n - 1
	}
	s.Active = i
}

func (Switch) isObject() {}

// IntoObject returns the switch itself.
func (s Switch) IntoObject() Object { return s }
