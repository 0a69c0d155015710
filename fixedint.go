package aper

/*
fixedint.go contains the generic fixed-width signed/unsigned integer
adapters, bounded by golang.org/x/exp/constraints rather than a
hand-rolled type-set interface.
*/

import "golang.org/x/exp/constraints"

/*
FixedInt encodes v as an Aligned PER constrained integer over the full
range of T: this is always the fully-constrained encode path
(TYPE_MIN, TYPE_MAX), never the unconstrained form, regardless of what
Constraints a caller elsewhere in a composed type might be tracking for
this field.
*/
func FixedInt[T constraints.Integer](v T) (*Encoding, error) {
	min, max := fixedIntBounds[T]()
	return EncodeInt(int64(v), &min, &max)
}

/*
DecodeFixedInt decodes a T from cur as an Aligned PER constrained integer
over the full range of T.
*/
func DecodeFixedInt[T constraints.Integer](cur *Cursor) (T, error) {
	min, max := fixedIntBounds[T]()
	v, err := cur.DecodeInt(&min, &max)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

/*
fixedIntBounds returns the [min, max] range of T expressed as int64. T is
restricted to the widths this package actually adapts (int8/16/32/64,
uint8/16/32/64); a uint64 value exceeding math.MaxInt64 cannot be
represented as an int64 and is out of scope.
*/
func fixedIntBounds[T constraints.Integer]() (min, max int64) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return -1 << 7, 1<<7 - 1
	case int16:
		return -1 << 15, 1<<15 - 1
	case int32:
		return -1 << 31, 1<<31 - 1
	case int64, int:
		return -1 << 63, 1<<63 - 1
	case uint8:
		return 0, 1<<8 - 1
	case uint16:
		return 0, 1<<16 - 1
	case uint32:
		return 0, 1<<32 - 1
	case uint64, uint:
		return 0, 1<<63 - 1
	default:
		return 0, 0
	}
}
