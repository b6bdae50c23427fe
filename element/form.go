package element

// SubmitFunc handles a form submission.
type SubmitFunc func(f *Form) error

// Form groups input fields behind submit and reset controls.
type Form struct {
	// OnSubmit runs when the form is submitted. Nil means submission is a
	// no-op.
	OnSubmit SubmitFunc

	SubmitButton Button
	ResetButton  Button
	Children     []Object
}

// Submit runs the form's submit handler.
func (f *Form) Submit() error {
	if f.OnSubmit == nil {
		return nil
	}
	return f.OnSubmit(f)
}

func (Form) isObject() {}

// IntoObject returns the form itself.
func (f Form) IntoObject() Object { return f }
