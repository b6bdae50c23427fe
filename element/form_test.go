package element_test

import (
	"errors"
	"testing"

	"github.com/dshills/snowui/element"
)

func TestFormSubmit(t *testing.T) {
	var got *element.Form
	form := element.Form{
		OnSubmit: func(f *element.Form) error {
			got = f
			return nil
		},
		SubmitButton: element.Button{Text: "Login"},
	}

	if err := form.Submit(); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if got != &form {
		t.Error("handler did not receive the submitted form")
	}
}

func TestFormSubmitNilHandler(t *testing.T) {
	var form element.Form
	if err := form.Submit(); err != nil {
		t.Errorf("Submit with nil handler = %v, want nil", err)
	}
}

func TestFormSubmitError(t *testing.T) {
	rejected := errors.New("rejected")
	form := element.Form{
		OnSubmit: func(*element.Form) error { return rejected },
	}

	if err := form.Submit(); !errors.Is(err, rejected) {
		t.Errorf("Submit = %v, want handler error", err)
	}
}
