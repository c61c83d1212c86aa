package service

import "errors"

var (
	// ErrForbidden marks a mutation attempted by someone who is neither the
	// entry's creator nor one of its participants (or, for the board, lacks
	// the capability). Handlers map it to 403.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalid marks bad caller input; handlers map it to 400.
	ErrInvalid = errors.New("invalid input")
)
