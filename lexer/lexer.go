// Package lexer implements the lexical analyzer for the eexpr source
// language: it turns a UTF-8 byte slice into an ordered token stream plus a
// stream of structured, non-fatal diagnostics, and optionally one fatal
// diagnostic that stops lexing.
//
// The lexer is strictly single-threaded and synchronous (spec §5): Lex runs
// every recognizer to completion on one owned Lexer value and returns once
// the input is exhausted or a fatal error is hit.
package lexer

import "github.com/eexpr-lang/eexpr/lexer/token"

// IndentInfo reports the file-wide indentation dialect discovered while
// lexing heredocs, for a downstream cooking pass (spec §6).
type IndentInfo struct {
	Established bool
	Char        rune
	Span        token.Span
}

// Result is everything Lex produces (spec §6).
type Result struct {
	Tokens            []token.Token
	Errors            []Error
	Fatal             *Error
	DiscoveredNewline NewlineKind
	DiscoveredIndent  IndentInfo
}

// Lex tokenizes src, presumed to be UTF-8. filename is attached to every
// Point for a downstream renderer's benefit; it is never interpreted.
func Lex(src []byte, filename string) Result {
	l := newLexer(filename, src)

	for l.fatal == nil {
		switch {
		case l.takeWhitespace():
		case l.takeNewline():
		case l.takeComment():
		case l.takeSymbol():
		case l.takeNumber():
		case l.takeHeredoc():
		case l.takeString():
		case l.takeCodepoint():
		case l.takeSplitter():
		case l.takeWrap():
		case l.takeLineContinuation():
		case l.takeEOF():
			return l.result()
		case l.takeUnexpected():
		default:
			panic("lexer: no recognizer consumed input at a non-EOF position")
		}
	}
	return l.result()
}

func (l *Lexer) result() Result {
	indent := IndentInfo{}
	if l.indentChar != sentinelChar {
		indent = IndentInfo{Established: true, Char: l.indentChar, Span: l.indentEstablished}
	}
	return Result{
		Tokens:            l.tokens,
		Errors:            l.errs,
		Fatal:             l.fatal,
		DiscoveredNewline: l.discoveredNewline,
		DiscoveredIndent:  indent,
	}
}

// consumedSince clones the bytes consumed between beginRest (a snapshot of
// l.rest taken before some run of advances) and the current position.
// Tokens own their text copies (spec §3 Ownership); the lexer only borrows
// the input slice.
func (l *Lexer) consumedSince(beginRest []byte) []byte {
	n := len(beginRest) - len(l.rest)
	out := make([]byte, n)
	copy(out, beginRest[:n])
	return out
}

// takeWhitespace recognizes a run of horizontal whitespace (spec §4.G.1).
func (l *Lexer) takeWhitespace() bool {
	c0, _ := l.peek1()
	if !isSpaceChar(c0) {
		return false
	}
	start := l.point()
	mixed := false
	count := 0
	for {
		c, size := l.peek1()
		if !isSpaceChar(c) {
			break
		}
		if c != c0 {
			mixed = true
		}
		l.advance(size, 1)
		count++
	}
	spaceChar := c0
	if mixed {
		spaceChar = token.MixedSpaceChar
	}
	sp := l.span(start)
	l.addTok(token.Token{Kind: token.UnknownSpace, Span: sp, SpaceChar: spaceChar, SpaceCount: count})
	if mixed {
		l.addErr(Error{Kind: MixedSpace, Span: sp})
	}
	return true
}

// takeNewline recognizes a single newline sequence (spec §4.G.2).
func (l *Lexer) takeNewline() bool {
	kind, size := decodeNewline(l.peekN(2))
	if kind == NewlineNone {
		return false
	}
	start := l.point()
	l.incLine(size)
	sp := l.span(start)
	l.addTok(token.Token{Kind: token.UnknownNewline, Span: sp})
	if l.discoveredNewline == NewlineNone {
		l.discoveredNewline = kind
	} else if kind != l.discoveredNewline {
		l.addErr(Error{Kind: MixedNewlines, Span: sp})
	}
	return true
}

// takeComment recognizes a '#' line comment (spec §4.G.3).
func (l *Lexer) takeComment() bool {
	c, size := l.peek1()
	if c != commentLeader {
		return false
	}
	start := l.point()
	l.advance(size, 1)
	for {
		c, size := l.peek1()
		if size == 0 || isNewlineChar(c) || c < 0 {
			break
		}
		l.advance(size, 1)
	}
	sp := l.span(start)
	l.addTok(token.Token{Kind: token.Comment, Span: sp})

	if c, _ := l.peek1(); c < 0 {
		badStart := l.point()
		l.advance(1, 1)
		l.setFatal(Error{Kind: BadBytes, Span: l.span(badStart), BadByte: byte(-c)})
	}
	return true
}

// takeSymbol recognizes a maximal run of symbol characters (spec §4.G.4).
func (l *Lexer) takeSymbol() bool {
	if !isSymbolStart(l.peekN(2)) {
		return false
	}
	start := l.point()
	beginRest := l.rest
	for {
		c, size := l.peek1()
		if !isSymbolChar(c) {
			break
		}
		l.advance(size, 1)
	}
	text := l.consumedSince(beginRest)
	l.addTok(token.Token{Kind: token.Symbol, Span: l.span(start), Text: text})
	return true
}

// takeWrap recognizes a single bracket character (spec §4.G.10).
func (l *Lexer) takeWrap() bool {
	c, size := l.peek1()
	wl, found := wrapChars[c]
	if !found {
		return false
	}
	start := l.point()
	l.advance(size, 1)
	l.addTok(token.Token{Kind: token.Wrap, Span: l.span(start), WrapKind: wl.kind, IsOpen: wl.isOpen})
	return true
}

// takeSplitter recognizes colon/dot/ellipsis/semicolon/comma (spec §4.G.11).
func (l *Lexer) takeSplitter() bool {
	kind, size := decodeSplitter(l.peekN(3))
	if kind == splitterNone {
		return false
	}
	start := l.point()
	l.advance(size, size) // splitters are all single-byte ASCII codepoints
	var tk token.Kind
	switch kind {
	case splitterColon:
		tk = token.UnknownColon
	case splitterDot:
		tk = token.UnknownDot
	case splitterEllipsis:
		tk = token.Ellipsis
	case splitterSemicolon:
		tk = token.Semicolon
	case splitterComma:
		tk = token.Comma
	}
	l.addTok(token.Token{Kind: tk, Span: l.span(start)})
	return true
}

// takeLineContinuation recognizes a backslash-newline join (spec §4.G.9).
func (l *Lexer) takeLineContinuation() bool {
	c, size := l.peek1()
	if c != escapeLeader {
		return false
	}
	start := l.point()
	l.advance(size, 1)

	wsStart := l.point()
	trailingSpace := false
	for {
		c, size := l.peek1()
		if !isSpaceChar(c) {
			break
		}
		l.advance(size, 1)
		trailingSpace = true
	}
	if trailingSpace {
		l.addErr(Error{Kind: TrailingSpace, Span: l.span(wsStart)})
	}

	if l.takeNewline() {
		l.delTok()
		l.addTok(token.Token{Kind: token.UnknownSpace, Span: l.span(start), SpaceChar: escapeLeader, SpaceCount: 0})
	} else {
		l.addErr(Error{Kind: BadChar, Span: l.span(start), BadChar: escapeLeader})
	}
	return true
}

// takeEOF emits the terminal EOF token (spec §4.G.12).
func (l *Lexer) takeEOF() bool {
	if len(l.rest) != 0 {
		return false
	}
	p := l.point()
	l.addTok(token.Token{Kind: token.EOF, Span: token.Span{Start: p, End: p}})
	return true
}

// takeUnexpected is the unconditional last resort: it always consumes
// exactly one codepoint, or one byte if the input is not valid UTF-8 there
// (spec §4.G.13).
func (l *Lexer) takeUnexpected() bool {
	c, size := l.peek1()
	start := l.point()
	if c < 0 {
		l.advance(1, 0)
		l.addErr(Error{Kind: BadBytes, Span: l.span(start), BadByte: byte(-c)})
	} else {
		l.advance(size, 1)
		l.addErr(Error{Kind: BadChar, Span: l.span(start), BadChar: c})
	}
	return true
}
