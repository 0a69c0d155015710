package aper

/*
codec.go contains the two composition contracts that user-defined
sequences and choices implement by calling the primitive adapters and the
underlying cursor/encoder directly.

These are plain interfaces satisfied by a value's (for encode) or
pointer's (for decode) method set: static dispatch, no runtime type
registry or struct-tag driven marshaling.
*/

/*
Encoder is implemented by any type that can produce its own Aligned PER
encoding. Failures are returned as an error, typically one of the
sentinels in errors.go, and bubble up to the caller, who is expected to
compose the returned [Encoding] with others via [Encoding.Append].
*/
type Encoder interface {
	ToAPER(Constraints) (*Encoding, error)
}

/*
Decoder is implemented by any type whose zero value, via a pointer
receiver, can populate itself from an Aligned PER bit stream. The cursor
is advanced by exactly the bits consumed on a successful call; on failure
the cursor position is unspecified and the receiver's partial state must
be discarded by the caller.
*/
type Decoder interface {
	FromAPER(*Cursor, Constraints) error
}

/*
DecodeValue is a generic convenience wrapper around a type T whose
pointer implements [Decoder]. It constructs a zero T, decodes into it,
and returns the populated value, sparing composed-type authors the
boilerplate of declaring a local variable and taking its address at every
call site.
*/
func DecodeValue[T any, PT interface {
	*T
	Decoder
}](cur *Cursor, c Constraints) (T, error) {
	var v T
	err := PT(&v).FromAPER(cur, c)
	return v, err
}
