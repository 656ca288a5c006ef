package lexer

import (
	"strings"

	"github.com/eexpr-lang/eexpr/lexer/token"
)

// Distinguished characters (spec §4.B).
const (
	digitSeparator    = '_'
	decimalPoint      = '.'
	escapeLeader      = '\\'
	commentLeader     = '#'
	plainStringDelim  = '"'
	spliceStringDelim = '`'
	codepointDelim    = '\''
	nullEscapeLetter  = '&'
	genericExpLetter  = '^'
	tabChar           = '\t'
	radixPrefixDigit  = '0'
)

const sentinelChar rune = -1 // "no character" / end of input sentinel

// commonEscapes maps an escape leader's next character to its decoded
// codepoint. Grounded on original_source/c/src/lexer.c's commonEscapes table.
var commonEscapes = map[rune]rune{
	'n':  0x0A,
	't':  0x09,
	'r':  0x0D,
	'0':  0x00,
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'`':  '`',
}

// Hex-escape leaders, keyed by how many hex digits follow.
const (
	twoHexEscapeLeader  = 'x'
	fourHexEscapeLeader = 'u'
	sixHexEscapeLeader  = 'U'
)

// radixParams describes one numeric radix's digit set and exponent letters.
type radixParams struct {
	radix           int
	prefixLetter    rune // letter following '0' that selects this radix; 0 for the default radix
	exponentLetters string
}

var (
	radixBinary  = &radixParams{radix: 2, prefixLetter: 'b', exponentLetters: ""}
	radixOctal   = &radixParams{radix: 8, prefixLetter: 'o', exponentLetters: ""}
	radixDozenal = &radixParams{radix: 12, prefixLetter: 'z', exponentLetters: ""}
	radixHex     = &radixParams{radix: 16, prefixLetter: 'x', exponentLetters: "p"}
	defaultRadix = &radixParams{radix: 10, prefixLetter: 0, exponentLetters: "e"}
)

var radixByPrefixLetter = map[rune]*radixParams{
	'b': radixBinary, 'B': radixBinary,
	'o': radixOctal, 'O': radixOctal,
	'z': radixDozenal, 'Z': radixDozenal,
	'x': radixHex, 'X': radixHex,
}

// decodeRadix resolves a radix-prefix letter (the character following a
// leading '0'), or nil if it does not select a radix.
func decodeRadix(c rune) *radixParams {
	return radixByPrefixLetter[c]
}

// isDigit reports whether c is a valid digit in radix, case-insensitively.
func isDigit(r *radixParams, c rune) bool {
	return digitValue(r, c) >= 0
}

// digitValue decodes c as a digit of radix r, or -1 if it is not one.
func digitValue(r *radixParams, c rune) int {
	var v int
	switch {
	case '0' <= c && c <= '9':
		v = int(c - '0')
	case 'a' <= c && c <= 'z':
		v = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return -1
	}
	if v >= r.radix {
		return -1
	}
	return v
}

// isExponentLetter reports whether c introduces an exponent for radix r,
// either one of r's own letters or the generic '^'.
func isExponentLetter(r *radixParams, c rune) bool {
	return c == genericExpLetter || strings.ContainsRune(r.exponentLetters, c)
}

func isSign(c rune) bool { return c == '+' || c == '-' }

func isNegativeSign(c rune) bool { return c == '-' }

// NewlineKind enumerates the newline dialects tracked for §3 invariant 2.
type NewlineKind int

const (
	NewlineNone NewlineKind = iota
	NewlineLF
	NewlineCR
	NewlineCRLF
)

func (k NewlineKind) String() string {
	switch k {
	case NewlineLF:
		return "LF"
	case NewlineCR:
		return "CR"
	case NewlineCRLF:
		return "CRLF"
	default:
		return "None"
	}
}

// decodeNewline inspects up to two lookahead codepoints and reports which
// newline sequence (if any) starts there, plus its length in codepoints.
func decodeNewline(look []rune) (kind NewlineKind, size int) {
	if len(look) == 0 {
		return NewlineNone, 0
	}
	switch look[0] {
	case '\n':
		return NewlineLF, 1
	case '\r':
		if len(look) > 1 && look[1] == '\n' {
			return NewlineCRLF, 2
		}
		return NewlineCR, 1
	default:
		return NewlineNone, 0
	}
}

func isNewlineChar(c rune) bool { return c == '\n' || c == '\r' }

func isSpaceChar(c rune) bool { return c == ' ' || c == '\t' }

// isStringChar reports whether c may appear unescaped inside a string or
// codepoint literal body: any printable, non-control codepoint that is not
// itself a delimiter, escape leader, or newline.
func isStringChar(c rune) bool {
	switch {
	case c < 0x20 || c == 0x7F:
		return false
	case c == escapeLeader:
		return false
	case isStringDelim(c) || isCodepointDelim(c):
		return false
	case isNewlineChar(c):
		return false
	default:
		return true
	}
}

func isStringDelim(c rune) bool { return c == plainStringDelim || c == spliceStringDelim }

func isCodepointDelim(c rune) bool { return c == codepointDelim }

// reservedSymbolChars are characters that terminate a run of symbol
// characters because they have dedicated syntactic meaning elsewhere.
const reservedSymbolChars = " \t\r\n#\"'`()[]{}:.;,\\"

func isSymbolChar(c rune) bool {
	switch {
	case c < 0x20 || c == 0x7F:
		return false
	default:
		return !strings.ContainsRune(reservedSymbolChars, c)
	}
}

// isSymbolStart reports whether a symbol may begin here, given the first two
// lookahead codepoints. A bare digit, or a sign directly followed by a
// digit, belongs to a number instead (spec §4.G.4).
func isSymbolStart(look []rune) bool {
	if len(look) == 0 || !isSymbolChar(look[0]) {
		return false
	}
	if isDigit(defaultRadix, look[0]) {
		return false
	}
	if isSign(look[0]) && len(look) > 1 && isDigit(defaultRadix, look[1]) {
		return false
	}
	return true
}

type wrapLookup struct {
	kind   token.WrapKind
	isOpen bool
}

var wrapChars = map[rune]wrapLookup{
	'(': {token.Paren, true}, ')': {token.Paren, false},
	'[': {token.Bracket, true}, ']': {token.Bracket, false},
	'{': {token.Brace, true}, '}': {token.Brace, false},
}

// splitterKind enumerates the outcomes of the splitter recognizer.
type splitterKind int

const (
	splitterNone splitterKind = iota
	splitterColon
	splitterDot
	splitterEllipsis
	splitterSemicolon
	splitterComma
)

// decodeSplitter inspects up to three lookahead codepoints and reports the
// splitter token they form, and how many codepoints it consumes.
func decodeSplitter(look []rune) (kind splitterKind, size int) {
	if len(look) == 0 {
		return splitterNone, 0
	}
	switch look[0] {
	case ':':
		return splitterColon, 1
	case ';':
		return splitterSemicolon, 1
	case ',':
		return splitterComma, 1
	case '.':
		if len(look) >= 3 && look[1] == '.' && look[2] == '.' {
			return splitterEllipsis, 3
		}
		return splitterDot, 1
	default:
		return splitterNone, 0
	}
}
