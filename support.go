package aper

/*
support.go contains stdlib function aliases used frequently throughout
this package. Centralizing them here keeps call sites terse and makes it
obvious, at a glance, which standard-library surface the codec actually
touches.
*/

import (
	"math/bits"
)

var (
	bitLen64 func(uint64) int = bits.Len64
)

/*
ceilDiv8 returns ceil(n/8) for a non-negative n expressed in bits.
*/
func ceilDiv8(n int) int { return (n + 7) / 8 }
