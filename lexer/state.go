package lexer

import "github.com/eexpr-lang/eexpr/lexer/token"

// Lexer is the mutable state threaded through the dispatch loop and every
// recognizer (spec §4.C). Per §3 invariant 1, only `rest` and the current
// location may influence future behavior -- no recognizer may look behind.
type Lexer struct {
	filename string
	rest     []byte // remaining, unconsumed input; borrowed, never owned
	offset   int     // byte offset of the next unread byte
	line     int     // 1-based
	column   int     // 1-based, counts codepoints

	tokens []token.Token
	errs   []Error
	fatal  *Error

	discoveredNewline NewlineKind

	indentChar        rune // sentinelChar until the first heredoc indent is established
	indentKnownMixed  bool
	indentEstablished token.Span
}

func newLexer(filename string, src []byte) *Lexer {
	return &Lexer{
		filename:   filename,
		rest:       src,
		line:       1,
		column:     1,
		indentChar: sentinelChar,
	}
}

// point returns the current source location (spec §4.D).
func (l *Lexer) point() token.Point {
	return token.Point{Filename: l.filename, Offset: l.offset, Line: l.line, Column: l.column}
}

func (l *Lexer) span(start token.Point) token.Span {
	return token.Span{Start: start, End: l.point()}
}

// peek1 decodes the next codepoint without consuming it.
func (l *Lexer) peek1() (cp rune, size int) {
	return decodeRune(l.rest)
}

// peekN decodes up to n codepoints of lookahead without consuming them.
func (l *Lexer) peekN(n int) []rune {
	return peekRunes(l.rest, n)
}

// advance moves the byte pointer forward by byteCount bytes, incrementing
// the column by charCount codepoints. Must not be used to cross a newline;
// use incLine for that.
func (l *Lexer) advance(byteCount, charCount int) {
	l.rest = l.rest[byteCount:]
	l.offset += byteCount
	l.column += charCount
}

// incLine advances past a newline sequence of newlineByteCount bytes,
// incrementing the line counter and resetting the column (spec §4.D).
func (l *Lexer) incLine(newlineByteCount int) {
	l.rest = l.rest[newlineByteCount:]
	l.offset += newlineByteCount
	l.line++
	l.column = 1
}

// addTok appends a token to the (append-only, except for delTok) output
// list (spec §4.C).
func (l *Lexer) addTok(t token.Token) {
	l.tokens = append(l.tokens, t)
}

// delTok removes the most recently emitted token. Used when a recognizer
// provisionally emits a token (e.g. an intermediate newline) that should be
// discarded once more context is known, such as inside a line continuation
// or heredoc body.
func (l *Lexer) delTok() {
	l.tokens = l.tokens[:len(l.tokens)-1]
}

// addErr appends a non-fatal diagnostic to the error stream (spec §4.C,
// component I). There is no deduplication here; individual recognizers are
// responsible for suppressing follow-on errors where the spec calls for it.
func (l *Lexer) addErr(e Error) {
	l.errs = append(l.errs, e)
}

// setFatal records a fatal diagnostic. Only the first one sticks; the
// dispatch loop observes l.fatal at the top of its next iteration.
func (l *Lexer) setFatal(e Error) {
	if l.fatal == nil {
		l.fatal = &e
	}
}
