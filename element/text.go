package element

// Text is a static text leaf.
type Text struct {
	Text string
}

func (Text) isObject() {}

// IntoObject returns the text itself.
func (t Text) IntoObject() Object { return t }

// Button is a clickable control. Click behavior lives on the owning
// element, not the button value; see ClickHandler.
type Button struct {
	Text string
}

func (Button) isObject() {}

// IntoObject returns the button itself.
func (b Button) IntoObject() Object { return b }
