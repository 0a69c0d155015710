package aper

/*
primitive.go contains the bool, null, octet string, and sequence-of T
adapters.
*/

/*
Bool is the ASN.1 BOOLEAN adapter: one bit, byte-padded on the right when
encoded standalone.
*/
type Bool bool

/*
ToAPER encodes the receiver as a single bit: 1 for true, 0 for false.
*/
func (b Bool) ToAPER(_ Constraints) (*Encoding, error) {
	var v byte
	if b {
		v = 1
	}
	return NewEncodingFromBytesAndPadding([]byte{v << 7}, 7), nil
}

/*
FromAPER reads one bit; any nonzero value decodes to true.
*/
func (b *Bool) FromAPER(cur *Cursor, _ Constraints) error {
	v, err := cur.Read(1)
	if err != nil {
		return err
	}
	*b = v > 0
	return nil
}

/*
Null is the ASN.1 NULL adapter: it consumes and produces no bits.
*/
type Null struct{}

/*
ToAPER returns an empty [Encoding].
*/
func (Null) ToAPER(_ Constraints) (*Encoding, error) { return NewEncoding(), nil }

/*
FromAPER is a no-op.
*/
func (*Null) FromAPER(_ *Cursor, _ Constraints) error { return nil }

/*
OctetString is the ASN.1 OCTET STRING adapter (a sequence of bytes): a
length determinant of n followed by n byte-aligned octets.
*/
type OctetString []byte

/*
ToAPER encodes the receiver's length as a determinant, followed by its
bytes verbatim.
*/
func (s OctetString) ToAPER(_ Constraints) (*Encoding, error) {
	enc, err := EncodeLength(len(s))
	if err != nil {
		return nil, err
	}
	enc.Append(NewEncodingFromBytes(append([]byte(nil), s...)))
	return enc, nil
}

/*
FromAPER decodes a length determinant followed by that many bytes.
*/
func (s *OctetString) FromAPER(cur *Cursor, _ Constraints) error {
	n, err := cur.DecodeLength()
	if err != nil {
		return err
	}

	buf, err := cur.ReadToBytes(make([]byte, 0, n), n*8)
	if err != nil {
		return err
	}
	*s = buf
	return nil
}

/*
resolvedBound returns v if present, else 0.
*/
func resolvedBound(v int64, present bool) int64 {
	if present {
		return v
	}
	return 0
}

/*
sequenceOfSizeIsExact reports whether c's size constraint resolves to an
exact element count: an absent Min or Max defaults to zero before the
comparison, so a size constraint with neither bound set resolves to an
exact count of zero rather than falling back to a length determinant.
This degenerate case is intentionally preserved rather than special-cased
away.
*/
func sequenceOfSizeIsExact(c Constraints) bool {
	if !c.HasSize() {
		return false
	}
	min := resolvedBound(c.Size.MinValue())
	max := resolvedBound(c.Size.MaxValue())
	return min == max
}

/*
EncodeSequenceOf encodes a slice of T, each of which implements [Encoder]:
a length determinant of n (omitted when c's size constraint pins an exact
element count, Min == Max) followed by n concatenated element encodings,
each passed c's outer Value constraint as its own inner Size constraint,
via [Constraints.AsElementSize].
*/
func EncodeSequenceOf[T Encoder](items []T, c Constraints) (*Encoding, error) {
	enc := NewEncoding()

	if !sequenceOfSizeIsExact(c) {
		lenEnc, err := EncodeLength(len(items))
		if err != nil {
			return nil, err
		}
		enc.Append(lenEnc)
	}

	elemConstraints := c.AsElementSize()
	for _, item := range items {
		itemEnc, err := item.ToAPER(elemConstraints)
		if err != nil {
			return nil, err
		}
		enc.Append(itemEnc)
	}

	return enc, nil
}

/*
DecodeSequenceOf decodes a slice of T, each of which implements [Decoder]
via its pointer. c's Size constraint supplies the element count directly
when it is exact (Min == Max); otherwise the count is read from a length
determinant. Every element is decoded with c's outer Value constraint
passed down as its own inner Size constraint.

Fails with [ErrMissingSizeConstraint] if c carries no size constraint at
all.
*/
func DecodeSequenceOf[T any, PT interface {
	*T
	Decoder
}](cur *Cursor, c Constraints) ([]T, error) {
	if !c.HasSize() {
		return nil, ErrMissingSizeConstraint
	}

	var n int
	if sequenceOfSizeIsExact(c) {
		n = int(resolvedBound(c.Size.MaxValue()))
	} else {
		var err error
		n, err = cur.DecodeLength()
		if err != nil {
			return nil, err
		}
	}

	elemConstraints := c.AsElementSize()
	items := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := DecodeValue[T, PT](cur, elemConstraints)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}

	return items, nil
}
