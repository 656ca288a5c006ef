package lexer

import "github.com/eexpr-lang/eexpr/lexer/token"

// takeNumber recognizes a numeric literal (spec §4.G.5):
//
//	sign?  (radix-prefix)?  digits  ('.' digits)?
//	       ( exp-letter sign? (radix-prefix)? digits )?
//
// An exponent sign is only valid when a fractional part was present; an
// exponent's own radix-prefix is only valid when the exponent letter was the
// generic '^' letter (otherwise exponent digits are read in the default
// radix, matching the conventional reading of e.g. hex-float "p" exponents
// as decimal).
func (l *Lexer) takeNumber() bool {
	look := l.peekN(2)
	if len(look) == 0 {
		return false
	}
	startsNumber := isDigit(defaultRadix, look[0]) ||
		(isSign(look[0]) && len(look) > 1 && isDigit(defaultRadix, look[1]))
	if !startsNumber {
		return false
	}
	start := l.point()

	neg := false
	if isSign(look[0]) {
		neg = isNegativeSign(look[0])
		_, size := l.peek1()
		l.advance(size, 1)
	}

	radix := defaultRadix
	if r, ok := l.takeRadixPrefix(); ok {
		radix = r
	}

	mantissa := newBigAccum()
	l.takeDigitGroup(radix, mantissa)

	fracDigits := 0
	hadFractional := false
	if c, size := l.peek1(); c == decimalPoint {
		if look2 := l.peekN(2); len(look2) > 1 && isDigit(radix, look2[1]) {
			l.advance(size, 1)
			hadFractional = true
			fracDigits = l.takeDigitGroup(radix, mantissa)
		}
	}

	exponent := newBigAccum()
	if c, _ := l.peek1(); isExponentLetter(radix, c) {
		isGeneric := c == genericExpLetter
		_, size := l.peek1()
		l.advance(size, 1)

		expNeg := false
		if sc, _ := l.peek1(); isSign(sc) {
			expNeg = isNegativeSign(sc)
			_, ssize := l.peek1()
			l.advance(ssize, 1)
			if !hadFractional {
				l.addErr(Error{Kind: BadExponentSign, Span: l.span(start)})
			}
		}

		expRadix := defaultRadix
		if isGeneric {
			if r, ok := l.takeRadixPrefix(); ok {
				expRadix = r
			}
		}

		expDigits := l.takeDigitGroup(expRadix, exponent)
		exponent = &bigAccum{v: exponent.signed(expNeg), sawDigits: exponent.sawDigits}
		if expDigits == 0 {
			l.addErr(Error{Kind: MissingExponent, Span: l.span(start)})
			l.addTok(token.Token{Kind: token.NumberError, Span: l.span(start)})
			return true
		}
	}

	l.addTok(token.Token{
		Kind:             token.Number,
		Span:             l.span(start),
		Mantissa:         mantissa.signed(neg),
		Radix:            radix.radix,
		FractionalDigits: fracDigits,
		Exponent:         exponent.v,
	})
	return true
}

// takeRadixPrefix consumes a '0' + radix-letter pair if present, reporting
// the selected radix.
func (l *Lexer) takeRadixPrefix() (*radixParams, bool) {
	look := l.peekN(2)
	if len(look) < 2 || look[0] != radixPrefixDigit {
		return nil, false
	}
	r := decodeRadix(look[1])
	if r == nil {
		return nil, false
	}
	_, size0 := l.peek1()
	l.advance(size0, 1)
	_, size1 := l.peek1()
	l.advance(size1, 1)
	return r, true
}

// takeDigitGroup consumes a run of digits of radix r, interleaved with digit
// separators, accumulating into acc. A separator with no preceding digit in
// this group (the start of the group, or directly after another separator)
// is flagged immediately at its own span. A separator with nothing following
// it in the group (the run ends right after it) is flagged once the run
// ends. Both kinds are accepted regardless (spec §4.G.5, worked example in
// §8: "1__2" flags only the second underscore, matching this asymmetric
// backward-then-trailing check -- a naive forward check on every separator
// would also flag the first). The resolved Open Question from §9 ("is a
// separator right after a radix prefix a group start") is yes: prevWasDigit
// starts false. Returns the count of actual digits consumed (not separators).
func (l *Lexer) takeDigitGroup(r *radixParams, acc *bigAccum) int {
	count := 0
	prevWasDigit := false
	trailingSep := false
	var trailingSepStart token.Point
	for {
		c, size := l.peek1()
		switch {
		case isDigit(r, c):
			acc.scale(r.radix)
			acc.inc(digitValue(r, c))
			l.advance(size, 1)
			count++
			prevWasDigit = true
			trailingSep = false
		case c == digitSeparator:
			sepStart := l.point()
			l.advance(size, 1)
			if !prevWasDigit {
				l.addErr(Error{Kind: BadDigitSeparator, Span: l.span(sepStart)})
				trailingSep = false
			} else {
				trailingSep = true
				trailingSepStart = sepStart
			}
			prevWasDigit = false
		default:
			if trailingSep {
				l.addErr(Error{Kind: BadDigitSeparator, Span: l.span(trailingSepStart)})
			}
			return count
		}
	}
}
