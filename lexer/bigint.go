package lexer

import "math/big"

// bigAccum is an arbitrary-precision unsigned accumulator for the mantissa
// and exponent of a Number token (spec §4.E). It wraps math/big.Int, which
// is the standard library's answer to "accumulator of unbounded length";
// no third-party bigint type appears anywhere in the retrieved example
// pack, so there is nothing to ground a replacement on.
type bigAccum struct {
	v         *big.Int
	sawDigits bool
}

func newBigAccum() *bigAccum {
	return &bigAccum{v: new(big.Int)}
}

// scale multiplies the accumulator by k (a small integer, at most a radix).
func (b *bigAccum) scale(k int) {
	if k == 1 {
		return
	}
	b.v.Mul(b.v, big.NewInt(int64(k)))
}

// inc adds a single digit (0..15) to the accumulator.
func (b *bigAccum) inc(d int) {
	b.v.Add(b.v, big.NewInt(int64(d)))
	b.sawDigits = true
}

// signed returns the accumulated magnitude with the given sign applied.
func (b *bigAccum) signed(neg bool) *big.Int {
	out := new(big.Int).Set(b.v)
	if neg {
		out.Neg(out)
	}
	return out
}
