package element

// HAlign positions children along the horizontal axis. The zero value is
// Center.
type HAlign int

const (
	// HAlignCenter centers children horizontally.
	HAlignCenter HAlign = iota
	// HAlignLeft packs children against the left edge.
	HAlignLeft
	// HAlignRight packs children against the right edge.
	HAlignRight
)

// String returns the alignment name.
func (a HAlign) String() string {
	switch a {
	case HAlignCenter:
		return "Center"
	case HAlignLeft:
		return "Left"
	case HAlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// VAlign positions children along the vertical axis. The zero value is
// Middle.
type VAlign int

const (
	// VAlignMiddle centers children vertically.
	VAlignMiddle VAlign = iota
	// VAlignTop packs children against the top edge.
	VAlignTop
	// VAlignBottom packs children against the bottom edge.
	VAlignBottom
)

// String returns the alignment name.
func (a VAlign) String() string {
	switch a {
	case VAlignMiddle:
		return "Middle"
	case VAlignTop:
		return "Top"
	case VAlignBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Size is an extent along one axis. The zero value, Viewport, fills the
// full viewport extent along the axis of the field holding it.
type Size int

// Viewport fills the whole viewport along the field's axis.
const Viewport Size = 0

// String returns the size name.
func (s Size) String() string {
	if s == Viewport {
		return "Viewport"
	}
	return "Unknown"
}
