package aper

/*
encoder.go contains the bit-appending encoder, the length determinant and
integer encode routines, and the wire-level constants shared with
decoder.go.
*/

const (
	lengthDetShort byte = 0b0000_0000
	lengthDetLong  byte = 0b1000_0000
	lengthDetFrag  byte = 0b1100_0000

	lengthMaskShort byte = 0b0111_1111
	lengthMaskLong  byte = 0b0011_1111

	// lengthLongMax is the exclusive upper bound of the two-octet long
	// form: values at or above it would need the fragmented form and
	// must be rejected, not silently truncated into 14 bits.
	lengthLongMax = 16384
)

/*
Encoding is a mutable byte vector plus a count of unused low-order bits
("right-padding") in its final byte. It is the Aligned PER analogue of a
growable write buffer: callers append encoded fragments to it with
[Encoding.Append], stitching together their bit boundaries, and extract
the finished bytes with [Encoding.Bytes].

Invariant: RPadding is 0 iff Bytes is empty or the final byte is fully
occupied; the low RPadding bits of the final byte are always zero.
*/
type Encoding struct {
	bytes    []byte
	rPadding int
}

/*
NewEncoding returns an empty [Encoding].
*/
func NewEncoding() *Encoding { return &Encoding{} }

/*
NewEncodingFromBytes returns an [Encoding] seeded with bytes and zero bits
of right-padding.
*/
func NewEncodingFromBytes(b []byte) *Encoding { return &Encoding{bytes: b} }

/*
NewEncodingFromBytesAndPadding returns an [Encoding] seeded with bytes and
rPad bits of right-padding, where 0 <= rPad <= 7.
*/
func NewEncodingFromBytesAndPadding(b []byte, rPad int) *Encoding {
	return &Encoding{bytes: b, rPadding: rPad}
}

/*
Bytes returns the accumulated byte slice. The caller must not mutate the
returned slice.
*/
func (e *Encoding) Bytes() []byte { return e.bytes }

/*
RPadding returns the number of unused low-order bits in the final byte.
*/
func (e *Encoding) RPadding() int { return e.rPadding }

/*
SetRPadding overrides the right-padding count. Composition helpers use
this only in the rare case where they construct Bytes directly rather
than through [Encoding.Append].
*/
func (e *Encoding) SetRPadding(n int) { e.rPadding = n }

/*
Append stitches other onto the end of the receiver, starting at the
RPadding-th least-significant bit of the receiver's final byte. The
concatenated bit string of the receiver after Append equals the
concatenation of the two operands' bit strings exactly; RPadding
afterward is always in [0, 7].

The whole byte sequence of other is shifted left by the receiver's
padding width and the result appended; when that shift pushes every real
bit out of what would otherwise be a trailing all-zero byte, that byte is
dropped rather than appended.
*/
func (e *Encoding) Append(other *Encoding) {
	if other == nil || len(other.bytes) == 0 {
		return
	}

	if len(e.bytes) == 0 {
		e.bytes = append(e.bytes, other.bytes...)
		e.rPadding = other.rPadding
		return
	}

	shift := e.rPadding
	if shift == 0 {
		e.bytes = append(e.bytes, other.bytes...)
		e.rPadding = other.rPadding
		return
	}

	last := len(e.bytes) - 1
	e.bytes[last] |= other.bytes[0] >> uint(8-shift)

	shifted := append([]byte(nil), other.bytes...)
	shiftBytesLeft(shifted, shift)

	e.rPadding = other.rPadding + shift
	if e.rPadding >= 8 {
		e.rPadding -= 8
		shifted = shifted[:len(shifted)-1]
	}

	e.bytes = append(e.bytes, shifted...)
}

/*
EncodeLength encodes n as an Aligned PER length determinant: a one-octet
short form for n < 128, a two-octet long form for 128 <= n < 16384. Values
of n >= 16384 would require the fragmented form, which this package does
not implement, and fail with [ErrNotImplemented] rather than silently
truncating.
*/
func EncodeLength(n int) (*Encoding, error) {
	switch {
	case n < 128:
		return NewEncodingFromBytes([]byte{(byte(n) & lengthMaskShort) | lengthDetShort}), nil
	case n < lengthLongMax:
		upper := byte(n >> 8)
		lower := byte(n)
		return NewEncodingFromBytes([]byte{(upper & lengthMaskLong) | lengthDetLong, lower}), nil
	default:
		return nil, ErrNotImplemented
	}
}

/*
EncodeInt encodes value as a constrained, semi-constrained, or
unconstrained signed integer. min and max are passed as pointers; nil
means absent.

Precondition: when both bounds are present and the resulting bit width is
8 or more, the caller is responsible for having aligned the surrounding
encoder onto a byte boundary beforehand.
*/
func EncodeInt(value int64, min, max *int64) (*Encoding, error) {
	if min != nil && max != nil {
		return encodeFullyConstrainedInt(value, *min, *max)
	}

	var payload []byte
	if min != nil {
		// Semi-constrained: non-negative offset, encoded as a minimal
		// unsigned big-endian value. No two's-complement sign guard is
		// needed; the decoder reads it back unsigned.
		offset := uint64(value - *min)
		payload = unsignedMinimalBEOfLen(offset, minimalUnsignedOctets(offset))
	} else {
		// Unconstrained: minimal two's-complement big-endian value.
		payload = twosComplementMinimalBE(value)
	}

	enc, err := EncodeLength(len(payload))
	if err != nil {
		return nil, err
	}
	enc.Append(NewEncodingFromBytes(payload))
	return enc, nil
}

func encodeFullyConstrainedInt(value, min, max int64) (*Encoding, error) {
	v := uint64(value) - uint64(min)
	nBits := constrainedRangeBitWidth(min, max)

	if nBits < 8 {
		return NewEncodingFromBytesAndPadding(
			[]byte{byte(v) << uint(8-nBits)}, 8-nBits,
		), nil
	}

	if nBits <= 16 {
		if nBits <= 8 {
			return NewEncodingFromBytes([]byte{byte(v)}), nil
		}
		return NewEncodingFromBytes([]byte{byte(v >> 8), byte(v)}), nil
	}

	length := ceilDiv8(nBits)
	enc, err := EncodeLength(length)
	if err != nil {
		return nil, err
	}
	enc.Append(NewEncodingFromBytes(unsignedMinimalBEOfLen(v, length)))
	return enc, nil
}

/*
constrainedRangeBitWidth returns the number of bits needed to encode
every value in [min, max] as an offset from min: ceil(log2(span+1)),
computed from the bit length of the span rather than via floating
point. The span is computed via unsigned 64-bit subtraction
(uint64(max) - uint64(min)) rather than max-min+1 in signed int64
arithmetic, which overflows silently when the range spans the full
width of int64 (min == math.MinInt64, max == math.MaxInt64).
*/
func constrainedRangeBitWidth(min, max int64) int {
	span := uint64(max) - uint64(min)
	if span == 0 {
		return 0
	}
	return bitLen64(span)
}

/*
twosComplementMinimalBE returns the minimal-length two's-complement
big-endian encoding of v, used for the unconstrained integer case.

This computes width from the value's own two's-complement bit length
rather than log2(value), which is undefined for v <= 0.
*/
func twosComplementMinimalBE(v int64) []byte {
	if v == 0 {
		return []byte{0}
	}

	if v > 0 {
		n := signedMinimalOctets(uint64(v))
		return unsignedMinimalBEOfLen(uint64(v), n)
	}

	// Negative: find the smallest n such that v fits in n octets of
	// two's complement, i.e. v >= -(1 << (8n-1)).
	n := 1
	for {
		minForN := int64(-1) << uint(8*n-1)
		if v >= minForN {
			break
		}
		n++
	}
	mod := uint64(1) << uint(8*n)
	value := mod + uint64(v)
	return unsignedMinimalBEOfLen(value, n)
}

/*
minimalUnsignedOctets returns the number of octets needed to represent a
non-negative value v as a plain unsigned big-endian integer, with no
two's-complement sign guard. Used for the semi-constrained integer case,
where the decoder always reads the payload back as unsigned.
*/
func minimalUnsignedOctets(v uint64) int {
	n := ceilDiv8(bitLen64(v))
	if n == 0 {
		n = 1
	}
	return n
}

/*
signedMinimalOctets returns the number of octets needed to represent a
positive value v unambiguously as a non-negative two's-complement
integer: enough for its bit length, plus one extra octet if the top bit
of the minimal-width encoding would otherwise read as negative.
*/
func signedMinimalOctets(v uint64) int {
	bitsNeeded := bitLen64(v)
	n := ceilDiv8(bitsNeeded)
	if n == 0 {
		n = 1
	}
	if bitsNeeded%8 == 0 && bitsNeeded > 0 {
		n++
	}
	return n
}

/*
unsignedMinimalBEOfLen writes the low n octets of v as big-endian bytes.
*/
func unsignedMinimalBEOfLen(v uint64, n int) []byte {
	buf := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return buf
}
