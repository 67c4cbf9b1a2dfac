package rs

import "errors"

var (
	// ErrDistance is returned when the requested minimum distance does not
	// fit the field's codeword length.
	ErrDistance = errors.New("minimum distance out of range")

	// ErrMessageTooLong is returned when the message degree reaches the
	// code dimension k.
	ErrMessageTooLong = errors.New("message longer than code dimension")

	// ErrWrongLength is returned when a received word does not carry
	// exactly n symbols.
	ErrWrongLength = errors.New("received word has wrong length")

	// ErrTooManyErrors is returned when the error locator degree exceeds
	// the code's correction radius, or when the corrected word still fails
	// the syndrome check.
	ErrTooManyErrors = errors.New("more errors than the code can correct")

	// ErrRootCountMismatch is returned when the Chien search finds a
	// different number of locator roots than the locator degree predicts,
	// a stronger signal of an uncorrectable word.
	ErrRootCountMismatch = errors.New("error locator roots do not match locator degree")
)
