package aper

/*
bitstring.go contains the BitString type and its Aligned PER adapter. Its
byte layout carries the unused trailing bits implicitly, through a bit
count, rather than through an explicit leading octet the way BER's BIT
STRING does. The length determinant is omitted whenever the size
constraint carries an upper bound (see [boundSizeConstraint]), a looser
rule than the exact-count (Min == Max) rule that sequence-of uses.
*/

/*
BitString is a contiguous bit sequence with an explicit length in bits,
stored as a byte vector plus a bit count. Trailing bits within the final
byte beyond BitLength are unspecified and must not be observed by
callers.

Bit ordering is MSB-first: bit index 0 corresponds to the high-order bit
of the first byte.
*/
type BitString struct {
	Bytes     []byte
	BitLength int
}

/*
NewBitString returns a [BitString] of the given bit length, with all bits
initially clear.
*/
func NewBitString(bitLength int) BitString {
	return BitString{Bytes: make([]byte, ceilDiv8(bitLength)), BitLength: bitLength}
}

/*
NewBitStringFromBytes returns a [BitString] wrapping b directly, with the
given bit length. len(b) must be ceil(bitLength/8).
*/
func NewBitStringFromBytes(b []byte, bitLength int) BitString {
	return BitString{Bytes: b, BitLength: bitLength}
}

/*
At returns the bit at idx as a Boolean. It returns false for any
out-of-range idx rather than panicking.
*/
func (b BitString) At(idx int) bool {
	if idx < 0 || idx >= b.BitLength {
		return false
	}
	byteIdx, bitIdx := idx/8, idx%8
	return b.Bytes[byteIdx]&(1<<uint(7-bitIdx)) != 0
}

/*
Set sets the bit at idx to val. It is a no-op for any out-of-range idx.
*/
func (b BitString) Set(idx int, val bool) {
	if idx < 0 || idx >= b.BitLength {
		return
	}
	byteIdx, bitIdx := idx/8, idx%8
	mask := byte(1) << uint(7-bitIdx)
	if val {
		b.Bytes[byteIdx] |= mask
	} else {
		b.Bytes[byteIdx] &^= mask
	}
}

/*
Len returns the bit length of the receiver.
*/
func (b BitString) Len() int { return b.BitLength }

/*
boundSizeConstraint determines whether a size [Constraint] pins down the
bit length of a BitString directly, without an on-wire length
determinant. Whenever the Max bound is present, regardless of whether Min
is also present, it is taken directly as the bit length and no length
octet appears on the wire. A length determinant is only read or written
when the size constraint is entirely absent.
*/
func boundSizeConstraint(c Constraints) (int, bool) {
	if !c.HasSize() {
		return 0, false
	}
	if max, hasMax := c.Size.MaxValue(); hasMax {
		return int(max), true
	}
	return 0, false
}

/*
ToAPER encodes the receiver: when c's size constraint pins the bit length
directly (see [boundSizeConstraint]), the length determinant is omitted
and the bits are packed in place; otherwise a length determinant is
emitted first.
*/
func (b BitString) ToAPER(c Constraints) (*Encoding, error) {
	enc := NewEncoding()

	if _, bound := boundSizeConstraint(c); !bound {
		lenEnc, err := EncodeLength(b.BitLength)
		if err != nil {
			return nil, err
		}
		enc.Append(lenEnc)
	}

	unused := 0
	if r := b.BitLength % 8; r != 0 {
		unused = 8 - r
	}
	enc.Append(NewEncodingFromBytesAndPadding(append([]byte(nil), b.Bytes...), unused))

	return enc, nil
}

/*
FromAPER decodes a BitString: a bound size constraint (see
[boundSizeConstraint]) supplies the bit length directly; otherwise a
length determinant is decoded first.
*/
func (b *BitString) FromAPER(cur *Cursor, c Constraints) error {
	bitLen, bound := boundSizeConstraint(c)
	if !bound {
		var err error
		bitLen, err = cur.DecodeLength()
		if err != nil {
			return err
		}
	}

	bytes, err := cur.ReadToBytes(make([]byte, 0, ceilDiv8(bitLen)), bitLen)
	if err != nil {
		return err
	}

	b.Bytes = bytes
	b.BitLength = bitLen
	return nil
}
