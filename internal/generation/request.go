package generation

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Request is the brief an email is written from.
type Request struct {
	// Content describes what the email must say. Required.
	Content string `json:"content" validate:"notblank"`

	// Tone is an optional style descriptor such as "formal" or "friendly".
	Tone string `json:"tone,omitempty"`
}

// UnmarshalJSON decodes a request, accepting the legacy "emailContent" field
// when "content" is absent from the object.
func (r *Request) UnmarshalJSON(data []byte) error {
	var wire struct {
		Content      *string `json:"content"`
		EmailContent *string `json:"emailContent"`
		Tone         *string `json:"tone"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*r = Request{}
	switch {
	case wire.Content != nil:
		r.Content = *wire.Content
	case wire.EmailContent != nil:
		r.Content = *wire.EmailContent
	}
	if wire.Tone != nil {
		r.Tone = *wire.Tone
	}
	return nil
}

// Validate returns ErrInvalidInput when Content is blank.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrInvalidInput
	}
	return nil
}
