package lexer

import (
	"fmt"

	"github.com/eexpr-lang/eexpr/lexer/token"
)

// ErrorKind enumerates the diagnostic kinds in spec §7.
type ErrorKind int

const (
	BadBytes ErrorKind = iota
	BadChar
	MixedSpace
	MixedNewlines
	MixedIndentation
	TrailingSpace
	BadDigitSeparator
	MissingExponent
	BadExponentSign
	BadEscapeChar
	BadEscapeCode
	MissingLinePickup
	BadCodepoint
	UnclosedCodepoint
	UnicodeOverflow
	BadStringChar
	UnclosedString

	// Heredoc kinds. All but HeredocBadIndentation are fatal (see IsFatal).
	HeredocBadOpen
	HeredocBadIndentDefinition
	HeredocBadIndentation
	UnclosedHeredoc
)

func (k ErrorKind) String() string {
	switch k {
	case BadBytes:
		return "BadBytes"
	case BadChar:
		return "BadChar"
	case MixedSpace:
		return "MixedSpace"
	case MixedNewlines:
		return "MixedNewlines"
	case MixedIndentation:
		return "MixedIndentation"
	case TrailingSpace:
		return "TrailingSpace"
	case BadDigitSeparator:
		return "BadDigitSeparator"
	case MissingExponent:
		return "MissingExponent"
	case BadExponentSign:
		return "BadExponentSign"
	case BadEscapeChar:
		return "BadEscapeChar"
	case BadEscapeCode:
		return "BadEscapeCode"
	case MissingLinePickup:
		return "MissingLinePickup"
	case BadCodepoint:
		return "BadCodepoint"
	case UnclosedCodepoint:
		return "UnclosedCodepoint"
	case UnicodeOverflow:
		return "UnicodeOverflow"
	case BadStringChar:
		return "BadStringChar"
	case UnclosedString:
		return "UnclosedString"
	case HeredocBadOpen:
		return "HeredocBadOpen"
	case HeredocBadIndentDefinition:
		return "HeredocBadIndentDefinition"
	case HeredocBadIndentation:
		return "HeredocBadIndentation"
	case UnclosedHeredoc:
		return "UnclosedHeredoc"
	default:
		return "Unknown"
	}
}

// IsFatal reports whether this kind halts the dispatch loop (spec §7).
func (k ErrorKind) IsFatal() bool {
	switch k {
	case HeredocBadOpen, HeredocBadIndentDefinition, UnclosedHeredoc:
		return true
	case BadBytes:
		// BadBytes is fatal only when discovered mid-comment; callers that
		// construct it that way set Fatal explicitly (see takeComment).
		return false
	default:
		return false
	}
}

// Error is a single structured diagnostic (spec §7).
type Error struct {
	Kind ErrorKind
	Span token.Span

	// BadBytes / BadChar / takeUnexpected
	BadByte byte
	BadChar rune

	// BadEscapeChar
	EscapeChar rune // token.MixedSpaceChar-style null sentinel: 0 means none

	// BadEscapeCode: all six hex-digit slots, unused ones are 0.
	EscapeCodeDigits [6]rune

	// BadCodepoint
	BadCodepointValue rune

	// UnicodeOverflow
	OverflowValue rune

	// BadStringChar
	BadStringCharValue rune

	// MixedIndentation: the file's already-established indent char and span.
	EstablishedIndentChar rune
	EstablishedIndentSpan token.Span
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Kind)
}
