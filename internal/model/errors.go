package model

import "errors"

// Tagged error taxonomy used internally. The HTTP boundary flattens every
// failure into the {success:false, message} envelope, so these only affect
// the message wording, never the response shape.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
	ErrConflict   = errors.New("conflict")
)
