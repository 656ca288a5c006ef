package lexer

import (
	"bytes"

	"github.com/eexpr-lang/eexpr/lexer/token"
)

// takeString recognizes a single-line interpolated string segment (spec
// §4.G.7). The opening and closing delimiters jointly determine the splice
// kind: "…" is plain, "…` is open, `…` is middle, `…" is close.
func (l *Lexer) takeString() bool {
	open, size := l.peek1()
	if open != plainStringDelim && open != spliceStringDelim {
		return false
	}
	start := l.point()
	l.advance(size, 1)

	var body []byte
	closeDelim := rune(0)
	closed := false

bodyLoop:
	for {
		c, size := l.peek1()
		switch {
		case size == 0, isNewlineChar(c):
			break bodyLoop
		case c == plainStringDelim || c == spliceStringDelim:
			closeDelim = c
			l.advance(size, 1)
			closed = true
			break bodyLoop
		case c == escapeLeader:
			escStart := l.point()
			l.advance(size, 1)
			if l.takeNullEscape() {
				continue bodyLoop
			}
			if cp, ok := l.takeCharEscape(); ok {
				body = appendRune(body, cp)
				continue bodyLoop
			}
			badChar, badSize := l.peek1()
			if badSize > 0 {
				l.advance(badSize, 1)
			}
			l.addErr(Error{Kind: BadEscapeChar, Span: l.span(escStart), EscapeChar: badChar})
		case isStringChar(c):
			body = appendRune(body, c)
			l.advance(size, 1)
		default:
			badStart := l.point()
			l.advance(size, 1)
			l.addErr(Error{Kind: BadStringChar, Span: l.span(badStart), BadStringCharValue: c})
		}
	}

	sp := l.span(start)
	if !closed {
		l.addErr(Error{Kind: UnclosedString, Span: sp})
	}
	l.addTok(token.Token{Kind: token.String, Span: sp, StringBytes: body, Splice: resolveSplice(open, closeDelim)})
	return true
}

func resolveSplice(open, close rune) token.SpliceKind {
	switch {
	case open == plainStringDelim && close == spliceStringDelim:
		return token.Open
	case open == spliceStringDelim && close == spliceStringDelim:
		return token.Middle
	case open == spliceStringDelim && close == plainStringDelim:
		return token.Close
	default:
		return token.Plain
	}
}

// appendRune appends the UTF-8 encoding of r to dst, by hand: the body
// buffer stores caller-facing bytes and must not alias the input slice, and
// unicode/utf8.AppendRune (present since Go 1.18) does exactly this.
func appendRune(dst []byte, r rune) []byte {
	var buf [4]byte
	n := encodeRune(buf[:], r)
	return append(dst, buf[:n]...)
}

// encodeRune is a minimal UTF-8 encoder mirroring decodeRune's byte-length
// rules, kept local so the lexer package does not need unicode/utf8 for
// anything but this one helper's moral equivalent.
func encodeRune(buf []byte, r rune) int {
	switch {
	case r < 0x80:
		buf[0] = byte(r)
		return 1
	case r < 0x800:
		buf[0] = 0xC0 | byte(r>>6)
		buf[1] = 0x80 | byte(r&0x3F)
		return 2
	case r < 0x10000:
		buf[0] = 0xE0 | byte(r>>12)
		buf[1] = 0x80 | byte((r>>6)&0x3F)
		buf[2] = 0x80 | byte(r&0x3F)
		return 3
	default:
		buf[0] = 0xF0 | byte(r>>18)
		buf[1] = 0x80 | byte((r>>12)&0x3F)
		buf[2] = 0x80 | byte((r>>6)&0x3F)
		buf[3] = 0x80 | byte(r&0x3F)
		return 4
	}
}

// takeHeredoc recognizes an indented heredoc string (spec §4.G.8). It is
// tried before takeString so the triple-quote opener is not mistaken for an
// empty plain string followed by a lone quote.
func (l *Lexer) takeHeredoc() bool {
	if !isTripleQuote(l.peekN(3)) {
		return false
	}
	start := l.point()
	l.advance(3, 3)

	beginTag := l.rest
	for {
		c, size := l.peek1()
		if !isSymbolChar(c) {
			break
		}
		l.advance(size, 1)
	}
	tag := l.consumedSince(beginTag)

	wsStart := l.point()
	if l.skipSpaces() {
		l.addErr(Error{Kind: TrailingSpace, Span: l.span(wsStart)})
	}

	indented := false
	if c, size := l.peek1(); c == escapeLeader {
		indented = true
		l.advance(size, 1)
		ws2Start := l.point()
		if l.skipSpaces() {
			l.addErr(Error{Kind: TrailingSpace, Span: l.span(ws2Start)})
		}
	}

	if !l.takeNewline() {
		l.setFatal(Error{Kind: HeredocBadOpen, Span: l.span(start)})
		return true
	}
	l.delTok()

	indentChar := sentinelChar
	indentNChars := 0
	if indented {
		var ok bool
		indentChar, indentNChars, ok = l.takeHeredocIndentDefinition()
		if !ok {
			return true
		}
	}

	closer := heredocCloserBytes(tag)
	var body []byte
	closed := false
	for {
		lineStart := l.rest
		for {
			c, size := l.peek1()
			if size == 0 || isNewlineChar(c) {
				break
			}
			l.advance(size, 1)
		}
		body = append(body, l.consumedSince(lineStart)...)

		if len(l.rest) == 0 {
			l.addTok(token.Token{Kind: token.StringError, Span: l.span(start)})
			l.setFatal(Error{Kind: UnclosedHeredoc, Span: l.span(start)})
			return true
		}
		nlStart := l.rest
		if !l.takeNewline() {
			panic("takeHeredoc: non-EOF non-newline stopped the line scan")
		}
		l.delTok()
		newlineBytes := l.consumedSince(nlStart)

		indentStart := l.point()
		consumed := 0
		badIndentChar := false
		for consumed < indentNChars {
			c, size := l.peek1()
			if size == 0 || isNewlineChar(c) {
				break
			}
			if c != indentChar {
				badIndentChar = true
				break
			}
			l.advance(size, 1)
			consumed++
		}
		switch {
		case badIndentChar:
			l.addErr(Error{Kind: HeredocBadIndentation, Span: l.span(indentStart)})
		case consumed > 0 && consumed < indentNChars:
			l.addErr(Error{Kind: TrailingSpace, Span: l.span(indentStart)})
		}

		if bytes.HasPrefix(l.rest, closer) {
			l.advance(len(closer), runeCount(closer))
			closed = true
			break
		}
		body = append(body, newlineBytes...)
	}

	sp := l.span(start)
	if closed {
		l.addTok(token.Token{Kind: token.String, Span: sp, StringBytes: body, Splice: token.Plain})
	}
	return true
}

// takeHeredocIndentDefinition consumes the indent-establishing line that
// follows an indented heredoc's opening tag line: a run of one indent
// character, followed by an escape leader, followed (when the indent
// character is a tab) by one more tab for column alignment, followed by a
// newline.
func (l *Lexer) takeHeredocIndentDefinition() (indentChar rune, nChars int, ok bool) {
	defStart := l.point()
	fail := func() (rune, int, bool) {
		l.addTok(token.Token{Kind: token.StringError, Span: l.span(defStart)})
		l.setFatal(Error{Kind: HeredocBadIndentDefinition, Span: l.span(defStart)})
		return 0, 0, false
	}

	c0, _ := l.peek1()
	if !isSpaceChar(c0) {
		return fail()
	}
	indentChar = c0
	for {
		c, size := l.peek1()
		if c != indentChar {
			break
		}
		l.advance(size, 1)
		nChars++
	}

	c, size := l.peek1()
	if c != escapeLeader {
		return fail()
	}
	l.advance(size, 1)
	nChars++

	if indentChar == tabChar {
		c2, size2 := l.peek1()
		if c2 != tabChar {
			return fail()
		}
		l.advance(size2, 1)
		nChars++
	}

	if !l.takeNewline() {
		return fail()
	}
	l.delTok()

	defSpan := l.span(defStart)
	switch {
	case l.indentChar == sentinelChar:
		l.indentChar = indentChar
		l.indentEstablished = defSpan
	case l.indentChar != indentChar:
		if !l.indentKnownMixed {
			l.addErr(Error{
				Kind:                  MixedIndentation,
				Span:                  defSpan,
				EstablishedIndentChar: l.indentChar,
				EstablishedIndentSpan: l.indentEstablished,
			})
			l.indentKnownMixed = true
		}
	}
	return indentChar, nChars, true
}

func isTripleQuote(look []rune) bool {
	return len(look) >= 3 && look[0] == plainStringDelim && look[1] == plainStringDelim && look[2] == plainStringDelim
}

func (l *Lexer) skipSpaces() bool {
	any := false
	for {
		c, size := l.peek1()
		if !isSpaceChar(c) {
			break
		}
		l.advance(size, 1)
		any = true
	}
	return any
}

func heredocCloserBytes(tag []byte) []byte {
	out := make([]byte, 0, len(tag)+3)
	out = append(out, tag...)
	out = append(out, '"', '"', '"')
	return out
}

func runeCount(b []byte) int {
	n := 0
	for len(b) > 0 {
		_, size := decodeRune(b)
		if size == 0 {
			break
		}
		b = b[size:]
		n++
	}
	return n
}
