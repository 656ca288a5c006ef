package lexer

import "github.com/eexpr-lang/eexpr/lexer/token"

// takeCharEscape decodes a character escape with the escape leader already
// consumed (spec §4.F). It tries the common escapes first, then the 2/4/6
// digit hex escapes. It returns (0, false) if no escape form matched at all
// -- no error is emitted in that case; the caller decides what to do with an
// unrecognized escape leader.
func (l *Lexer) takeCharEscape() (cp rune, ok bool) {
	c, size := l.peek1()

	if decoded, found := commonEscapes[c]; found {
		l.advance(size, 1)
		return decoded, true
	}

	switch c {
	case twoHexEscapeLeader:
		l.advance(size, 1)
		return l.takeHexEscape(2), true
	case fourHexEscapeLeader:
		l.advance(size, 1)
		return l.takeHexEscape(4), true
	case sixHexEscapeLeader:
		l.advance(size, 1)
		return l.takeHexEscape(6), true
	default:
		return 0, false
	}
}

// takeHexEscape consumes exactly n hex digits (n is 2, 4, or 6) and decodes
// them. If any digit is not a hex digit, it emits BadEscapeCode carrying all
// six slots (unused slots are 0) and returns the best-effort decoded value.
func (l *Lexer) takeHexEscape(n int) rune {
	start := l.point()
	var digits [6]rune
	offset := 6 - n
	bad := false
	var value rune
	for i := 0; i < n; i++ {
		c, size := l.peek1()
		digits[offset+i] = c
		d := digitValue(radixHex, c)
		if d < 0 {
			bad = true
			// Stop at end of input; otherwise the non-hex character still
			// takes up its slot: it is consumed and recorded for the
			// diagnostic.
			if c == 0 && size == 0 {
				break
			}
			l.advance(size, 1)
			continue
		}
		l.advance(size, 1)
		value = value*16 + rune(d)
	}
	if bad {
		l.addErr(Error{
			Kind:             BadEscapeCode,
			Span:             l.span(start),
			EscapeCodeDigits: digits,
		})
	}
	return value
}

// takeNullEscape handles the string-only null escape forms (spec §4.F):
// either a line-continuation ("\" newline [whitespace] "\") or the dedicated
// null-escape letter. It returns whether any input was consumed.
func (l *Lexer) takeNullEscape() bool {
	c, _ := l.peek1()
	if isNewlineChar(c) {
		if !l.takeNewline() {
			panic("takeNullEscape: isNewlineChar true but takeNewline failed")
		}
		l.delTok()
		if l.takeWhitespace() {
			l.delTok()
		}
		start := l.point()
		c, size := l.peek1()
		if c == escapeLeader {
			l.advance(size, 1)
		} else {
			l.addErr(Error{Kind: MissingLinePickup, Span: token.Span{Start: start, End: start}})
		}
		return true
	}
	if c == nullEscapeLetter {
		_, size := l.peek1()
		l.advance(size, 1)
		return true
	}
	return false
}
