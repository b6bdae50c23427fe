package element

// TextInput is a single-line input field.
type TextInput struct {
	// Label is optional text shown next to the field.
	Label string
	Name  string
	Type  string

	// MaxLen limits input length. Zero means unlimited.
	MaxLen int
}

// InputType returns the effective input type. An empty Type means "text".
func (t TextInput) InputType() string {
	if t.Type == "" {
		return "text"
	}
	return t.Type
}

func (TextInput) isObject() {}

// IntoObject returns the input itself.
func (t TextInput) IntoObject() Object { return t }
