package aper

/*
errors.go contains the typed sentinel errors raised by this package.
Every error here is a distinct value carrying no payload; callers are
expected to compare against these sentinels with [errors.Is] rather than
inspect error strings.
*/

import "errors"

var (
	mkerr func(string) error = errors.New

	// ErrInvalidChoice is raised when a decoded CHOICE index exceeds the
	// known alternatives.
	ErrInvalidChoice error = mkerr("aper: decoded choice index out of range")

	// ErrMalformedLength is raised when a length determinant cannot be
	// read. The unsupported fragmented form is reported as
	// [ErrNotImplemented] instead.
	ErrMalformedLength error = mkerr("aper: malformed length determinant")

	// ErrMalformedInt is raised when a decoded integer falls outside its
	// [min, max] constraint.
	ErrMalformedInt error = mkerr("aper: decoded integer outside constraint range")

	// ErrMissingSizeConstraint is raised when a sequence-of is decoded
	// without a size [Constraint]; no encode path returns it.
	ErrMissingSizeConstraint error = mkerr("aper: size constraint required but absent")

	// ErrMissingValueConstraint is raised when a value-constrained type
	// is decoded or encoded without a value [Constraint].
	ErrMissingValueConstraint error = mkerr("aper: value constraint required but absent")

	// ErrNotEnoughBits is raised when a cursor read would consume more
	// bits than remain in the buffer.
	ErrNotEnoughBits error = mkerr("aper: not enough bits remaining in buffer")

	// ErrNotImplemented is raised for fragmented length determinants and
	// for multi-octet constrained integers whose length determinant
	// exceeds 8 octets.
	ErrNotImplemented error = mkerr("aper: construct not implemented")

	// ErrWriteError is raised when an internal write to a growable byte
	// buffer fails. This should never occur in practice.
	ErrWriteError error = mkerr("aper: internal write failure")
)
