/*
Package aper implements a codec for ASN.1 Aligned Packed Encoding Rules
(Aligned PER, ITU-T X.691).

The package is schema-agnostic: it provides the bit-cursor decoder, the
bit-appending encoder, the length determinant codec, the constrained
integer codec, and the two composition contracts ([Encoder] and [Decoder])
that a generated or hand-written type uses to marshal itself. It does not
generate code from ASN.1 grammars and does not know about any particular
message schema.

Only the Aligned variant is supported. BER, CER, DER and Unaligned PER
(UPER) are out of scope.
*/
package aper
