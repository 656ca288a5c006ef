package lexer

import "github.com/eexpr-lang/eexpr/lexer/token"

// takeCodepoint recognizes a codepoint literal (spec §4.G.6): a single
// string char or escape between two codepointDelim ticks. A null escape
// (line continuation) is deliberately not accepted here -- takeCharEscape
// is called directly rather than through takeNullEscape.
func (l *Lexer) takeCodepoint() bool {
	c, size := l.peek1()
	if c != codepointDelim {
		return false
	}
	start := l.point()
	l.advance(size, 1)

	value := rune(0)
	ok := false
	sawEscapeLeader := false
	escStart := start
	if nc, nsize := l.peek1(); nc == escapeLeader {
		sawEscapeLeader = true
		escStart = l.point()
		l.advance(nsize, 1)
		if cp, escOk := l.takeCharEscape(); escOk {
			value, ok = cp, true
		}
	} else if isStringChar(nc) {
		l.advance(nsize, 1)
		value, ok = nc, true
	}

	if !ok {
		bc, bsize := l.peek1()
		if bc == codepointDelim {
			// Leave the closing tick alone for the check below instead of
			// consuming it as the bad value, or e.g. '' would eat its own
			// closer and spuriously report UnclosedCodepoint on top
			// (original_source/c/src/lexer.c's takeCodepoint: "don't
			// consume the next char if it's a tick").
			bc = 0
		} else if bsize > 0 {
			l.advance(bsize, 1)
		}
		if sawEscapeLeader {
			l.addErr(Error{Kind: BadEscapeChar, Span: l.span(escStart), EscapeChar: bc})
		} else {
			l.addErr(Error{Kind: BadCodepoint, Span: l.span(start), BadCodepointValue: bc})
		}
	}

	overflowed := ok && value > 0x10FFFF
	if overflowed {
		l.addErr(Error{Kind: UnicodeOverflow, Span: l.span(start), OverflowValue: value})
	}

	if cc, csize := l.peek1(); cc == codepointDelim {
		l.advance(csize, 1)
	} else {
		for {
			c2, size2 := l.peek1()
			if size2 == 0 || isNewlineChar(c2) {
				break
			}
			if c2 == codepointDelim {
				l.advance(size2, 1)
				break
			}
			l.advance(size2, 1)
		}
		l.addErr(Error{Kind: UnclosedCodepoint, Span: l.span(start)})
	}

	if ok && !overflowed {
		l.addTok(token.Token{Kind: token.Codepoint, Span: l.span(start), CodepointValue: value})
	}
	return true
}
