package element

// Board is the top-level layout surface. The zero value spans the whole
// viewport and centers its children both ways.
type Board struct {
	Width    Size
	Height   Size
	HAlign   HAlign
	VAlign   VAlign
	Children []Object
}

func (Board) isObject() {}

// IntoObject returns the board itself.
func (b Board) IntoObject() Object { return b }
