package element

// Card groups children into a framed block.
type Card struct {
	Children []Object
}

func (Card) isObject() {}

// IntoObject returns the card itself.
func (c Card) IntoObject() Object { return c }

// Row lays children out horizontally.
type Row struct {
	Children []Object
}

func (Row) isObject() {}

// IntoObject returns the row itself.
func (r Row) IntoObject() Object { return r }
