package aper

/*
choice.go contains the extension marker and CHOICE index helpers: a
CHOICE is encoded as an extension-marker bit followed by a constrained
integer over the alternative index range.
*/

/*
ExtensionMarker is the single bit ASN.1 prepends to a SEQUENCE or CHOICE
to signal the presence of extension alternatives. A true marker encodes
as 1 and a false one as 0. [EncodeChoiceHeader] always writes a clear
marker, and [DecodeChoiceHeader] reads the marker without acting on its
value: this package signals presence or absence only and does not itself
decode any extension addition group.
*/
type ExtensionMarker bool

/*
ToAPER encodes the receiver as a single bit.
*/
func (m ExtensionMarker) ToAPER(_ Constraints) (*Encoding, error) {
	var b byte
	if m {
		b = 1
	}
	return NewEncodingFromBytesAndPadding([]byte{b << 7}, 7), nil
}

/*
FromAPER decodes a single bit into the receiver.
*/
func (m *ExtensionMarker) FromAPER(cur *Cursor, _ Constraints) error {
	v, err := cur.Read(1)
	if err != nil {
		return err
	}
	*m = v > 0
	return nil
}

/*
EncodeChoiceHeader encodes a CHOICE header: a clear extension marker
followed by the chosen alternative's index as a constrained integer over
[0, n-1]. The caller appends the chosen alternative's own encoding after
the returned [Encoding].
*/
func EncodeChoiceHeader(index, n int) (*Encoding, error) {
	enc, err := ExtensionMarker(false).ToAPER(UNCONSTRAINED)
	if err != nil {
		return nil, err
	}

	var min, max int64 = 0, int64(n - 1)
	idxEnc, err := EncodeInt(int64(index), &min, &max)
	if err != nil {
		return nil, err
	}
	enc.Append(idxEnc)

	return enc, nil
}

/*
DecodeChoiceHeader reads a CHOICE header (extension marker plus a
constrained integer over [0, n-1]) and returns the decoded alternative
index. DecodeInt already guarantees a decoded index cannot fall outside
[0, n-1] for the constrained form, rejecting it as [ErrMalformedInt]
instead; DecodeChoiceHeader remaps that case, and a non-positive n, to
[ErrInvalidChoice].
*/
func DecodeChoiceHeader(cur *Cursor, n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidChoice
	}

	var ext ExtensionMarker
	if err := ext.FromAPER(cur, UNCONSTRAINED); err != nil {
		return 0, err
	}

	var min, max int64 = 0, int64(n - 1)
	idx, err := cur.DecodeInt(&min, &max)
	if err != nil {
		if err == ErrMalformedInt {
			return 0, ErrInvalidChoice
		}
		return 0, err
	}

	return int(idx), nil
}
