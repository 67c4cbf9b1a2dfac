package bch

import "errors"

var (
	// ErrDistance is returned when the design distance leaves no room for
	// message bits in the codeword.
	ErrDistance = errors.New("design distance out of range")

	// ErrMessageTooLong is returned when the message does not fit the
	// code dimension.
	ErrMessageTooLong = errors.New("message longer than code dimension")

	// ErrWrongLength is returned when a received word has degree at or
	// beyond the codeword length.
	ErrWrongLength = errors.New("received word has wrong length")

	// ErrTooManyErrors is returned when no error pattern within the
	// correction radius is consistent with the received word.
	ErrTooManyErrors = errors.New("more errors than the code can correct")
)
