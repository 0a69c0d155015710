package aper

import (
	"bytes"
	"testing"
)

func TestScenario_BooleanUnconstrained(t *testing.T) {
	enc, err := Bool(true).ToAPER(UNCONSTRAINED)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if !bytes.Equal(enc.Bytes(), []byte{0x80}) {
		t.Errorf("%s failed: want [0x80] got % X", t.Name(), enc.Bytes())
	}
	if enc.RPadding() != 7 {
		t.Errorf("%s failed: want r_padding 7 got %d", t.Name(), enc.RPadding())
	}
}

func TestScenario_OctetStringUnconstrained(t *testing.T) {
	s := OctetString([]byte{0x46, 0x4f, 0x4f})
	enc, err := s.ToAPER(UNCONSTRAINED)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	want := []byte{0x03, 0x46, 0x4f, 0x4f}
	if !bytes.Equal(enc.Bytes(), want) {
		t.Errorf("%s failed: want % X got % X", t.Name(), want, enc.Bytes())
	}
}

func TestScenario_BitStringSizeBound(t *testing.T) {
	bs := NewBitString(4)
	bs.Set(0, true)
	bs.Set(1, true)
	bs.Set(2, true)
	enc, err := bs.ToAPER(WithSize(NewUpperConstraint(4)))
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if !bytes.Equal(enc.Bytes(), []byte{0xE0}) {
		t.Errorf("%s failed: want [0xE0] got % X", t.Name(), enc.Bytes())
	}
}

func TestScenario_SequenceOfExactSizeDecode(t *testing.T) {
	data := []byte{0x03, 0xfe, 0x46, 0xc0, 0x4f, 0x88, 0x4f}
	cur := NewCursor(data)
	n, err := cur.DecodeLength()
	if err != nil {
		t.Fatalf("%s length failed: %v", t.Name(), err)
	}
	if n != 3 {
		t.Fatalf("%s failed: want length 3 got %d", t.Name(), n)
	}

	c := WithSize(NewFullConstraint(int64(n), int64(n)))
	items, err := DecodeSequenceOf[fixedU16, *fixedU16](cur, c)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	want := []uint16{0xfe46, 0xc04f, 0x884f}
	for i, w := range want {
		if uint16(items[i]) != w {
			t.Errorf("%s[%d] failed: want 0x%04X got 0x%04X", t.Name(), i, w, items[i])
		}
	}
}

func TestScenario_SequenceOfUnconstrainedEncode(t *testing.T) {
	items := []fixedI32{-1 << 31, -1<<31 + 1, -1<<31 + 2}
	enc, err := EncodeSequenceOf[fixedI32](items, UNCONSTRAINED)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	want := []byte{
		0x03,
		0x04, 0x00, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00, 0x01,
		0x04, 0x00, 0x00, 0x00, 0x02,
	}
	if !bytes.Equal(enc.Bytes(), want) {
		t.Errorf("%s failed: want % X got % X", t.Name(), want, enc.Bytes())
	}
}

func TestScenario_ChoiceOverSequenceOf(t *testing.T) {
	// A small CHOICE between two alternatives, the second of which
	// carries a two-element SEQUENCE OF fixed-width integer, exercises
	// choice.go, primitive.go, and fixedint.go together in one message.
	headerEnc, err := EncodeChoiceHeader(1, 2)
	if err != nil {
		t.Fatalf("%s header encode failed: %v", t.Name(), err)
	}

	body := []fixedU16{10, 20}
	bodyEnc, err := EncodeSequenceOf[fixedU16](body, WithSize(NewFullConstraint(2, 2)))
	if err != nil {
		t.Fatalf("%s body encode failed: %v", t.Name(), err)
	}
	headerEnc.Append(bodyEnc)

	cur := NewCursor(headerEnc.Bytes())
	idx, err := DecodeChoiceHeader(cur, 2)
	if err != nil {
		t.Fatalf("%s header decode failed: %v", t.Name(), err)
	}
	if idx != 1 {
		t.Fatalf("%s failed: want alternative index 1 got %d", t.Name(), idx)
	}

	got, err := DecodeSequenceOf[fixedU16, *fixedU16](cur, WithSize(NewFullConstraint(2, 2)))
	if err != nil {
		t.Fatalf("%s body decode failed: %v", t.Name(), err)
	}
	for i, w := range body {
		if got[i] != w {
			t.Errorf("%s[%d] failed: want %d got %d", t.Name(), i, w, got[i])
		}
	}
}

func TestScenario_SequenceOfBitString(t *testing.T) {
	// A SEQUENCE OF BIT STRING where the outer Value constraint pins
	// each element's bit length (4) and the outer Size constraint pins
	// the element count (2): exercises Constraints.AsElementSize
	// feeding BitString's own bound-size path, so neither the sequence
	// count nor any individual element's length appears as an on-wire
	// determinant.
	c := WithValueAndSize(NewFullConstraint(4, 4), NewFullConstraint(2, 2))

	items := []BitString{NewBitString(4), NewBitString(4)}
	items[0].Set(0, true)
	items[0].Set(3, true)
	items[1].Set(1, true)

	enc, err := EncodeSequenceOf[BitString](items, c)
	if err != nil {
		t.Fatalf("%s encode failed: %v", t.Name(), err)
	}
	// 4 bits + 4 bits = 1 byte exactly, no length determinants at all.
	if len(enc.Bytes()) != 1 {
		t.Fatalf("%s failed: want 1 byte got % X", t.Name(), enc.Bytes())
	}

	got, err := DecodeSequenceOf[BitString, *BitString](NewCursor(enc.Bytes()), c)
	if err != nil {
		t.Fatalf("%s decode failed: %v", t.Name(), err)
	}
	if len(got) != 2 {
		t.Fatalf("%s failed: want 2 elements got %d", t.Name(), len(got))
	}
	for i, item := range items {
		for bit := 0; bit < 4; bit++ {
			if got[i].At(bit) != item.At(bit) {
				t.Errorf("%s elem %d bit %d failed: want %v got %v", t.Name(), i, bit, item.At(bit), got[i].At(bit))
			}
		}
	}
}

func TestScenario_NestedBitStringAfterInteger(t *testing.T) {
	// A two-octet constrained integer ([0,1000]) followed by a
	// size-bound bit string of length 5, shorter than an octet:
	// exercises ReadToBytes's sub-octet path (left-justified result)
	// immediately after a preceding multi-byte field rather than in
	// isolation.
	var min, max int64 = 0, 1000
	intEnc, err := EncodeInt(300, &min, &max)
	if err != nil {
		t.Fatalf("%s int encode failed: %v", t.Name(), err)
	}

	bs := NewBitString(5)
	bs.Set(0, true)
	bs.Set(2, true)
	bs.Set(4, true)
	bsEnc, err := bs.ToAPER(WithSize(NewUpperConstraint(5)))
	if err != nil {
		t.Fatalf("%s bitstring encode failed: %v", t.Name(), err)
	}
	intEnc.Append(bsEnc)

	cur := NewCursor(intEnc.Bytes())
	gotInt, err := cur.DecodeInt(&min, &max)
	if err != nil {
		t.Fatalf("%s int decode failed: %v", t.Name(), err)
	}
	if gotInt != 300 {
		t.Fatalf("%s failed: want int 300 got %d", t.Name(), gotInt)
	}

	var gotBS BitString
	if err := gotBS.FromAPER(cur, WithSize(NewUpperConstraint(5))); err != nil {
		t.Fatalf("%s bitstring decode failed: %v", t.Name(), err)
	}
	for i := 0; i < 5; i++ {
		want := i == 0 || i == 2 || i == 4
		if got := gotBS.At(i); got != want {
			t.Errorf("%s bit %d failed: want %v got %v", t.Name(), i, want, got)
		}
	}
}
