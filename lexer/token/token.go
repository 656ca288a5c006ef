// Package token defines the tokens produced by the eexpr lexer.
package token

import (
	"fmt"
	"math/big"

	participlelexer "github.com/alecthomas/participle/v2/lexer"
)

// Point is a single location in a source file.
type Point struct {
	Filename string
	Offset   int // byte offset
	Line     int // 1-based
	Column   int // 1-based, counts codepoints not bytes
}

func (p Point) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Position adapts a Point to participle's lexer.Position shape, letting a
// downstream cooker that drives a participle grammar off these tokens adapt
// positions without re-deriving offset/line/column bookkeeping.
func (p Point) Position() participlelexer.Position {
	return participlelexer.Position{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}

// Span is a half-open region of source, [Start, End).
type Span struct {
	Start Point
	End   Point
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Kind discriminates the token variants in §3 of the spec.
type Kind int

const (
	Invalid Kind = iota
	UnknownSpace
	UnknownNewline
	Comment
	Symbol
	Number
	Codepoint
	String
	NumberError
	StringError
	Wrap
	UnknownColon
	UnknownDot
	Ellipsis
	Semicolon
	Comma
	EOF
)

func (k Kind) String() string {
	switch k {
	case UnknownSpace:
		return "UnknownSpace"
	case UnknownNewline:
		return "UnknownNewline"
	case Comment:
		return "Comment"
	case Symbol:
		return "Symbol"
	case Number:
		return "Number"
	case Codepoint:
		return "Codepoint"
	case String:
		return "String"
	case NumberError:
		return "NumberError"
	case StringError:
		return "StringError"
	case Wrap:
		return "Wrap"
	case UnknownColon:
		return "UnknownColon"
	case UnknownDot:
		return "UnknownDot"
	case Ellipsis:
		return "Ellipsis"
	case Semicolon:
		return "Semicolon"
	case Comma:
		return "Comma"
	case EOF:
		return "EOF"
	default:
		return "Invalid"
	}
}

// MixedSpaceChar is the sentinel stored in an UnknownSpace token's SpaceChar when a
// whitespace run mixes distinct space characters.
const MixedSpaceChar rune = -1

// WrapKind enumerates bracket families for the Wrap token.
type WrapKind int

const (
	Paren WrapKind = iota
	Bracket
	Brace
)

func (k WrapKind) String() string {
	switch k {
	case Paren:
		return "Paren"
	case Bracket:
		return "Bracket"
	case Brace:
		return "Brace"
	default:
		return "Unknown"
	}
}

// SpliceKind encodes which pair of delimiters surrounds a String token, so a
// cooker can reassemble an interpolated string template.
type SpliceKind int

const (
	Plain SpliceKind = iota
	Open
	Middle
	Close
)

func (k SpliceKind) String() string {
	switch k {
	case Plain:
		return "Plain"
	case Open:
		return "Open"
	case Middle:
		return "Middle"
	case Close:
		return "Close"
	default:
		return "Unknown"
	}
}

// Token is a discriminated value: only the fields relevant to Kind are
// meaningful, following the variants in spec §3.
type Token struct {
	Kind Kind
	Span Span

	// UnknownSpace
	SpaceChar  rune
	SpaceCount int

	// Symbol
	Text []byte

	// Number / NumberError
	Mantissa         *big.Int
	Radix            int
	FractionalDigits int
	Exponent         *big.Int

	// Codepoint
	CodepointValue rune

	// String / StringError
	StringBytes []byte
	Splice      SpliceKind

	// Wrap
	WrapKind WrapKind
	IsOpen   bool
}

func (t Token) String() string {
	switch t.Kind {
	case Symbol:
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Span)
	case Number:
		return fmt.Sprintf("%s(mantissa=%s radix=%d frac=%d exp=%s)@%s",
			t.Kind, t.Mantissa, t.Radix, t.FractionalDigits, t.Exponent, t.Span)
	case Codepoint:
		return fmt.Sprintf("%s(%U)@%s", t.Kind, t.CodepointValue, t.Span)
	case String:
		return fmt.Sprintf("%s(%q splice=%s)@%s", t.Kind, t.StringBytes, t.Splice, t.Span)
	case Wrap:
		return fmt.Sprintf("%s(%s open=%v)@%s", t.Kind, t.WrapKind, t.IsOpen, t.Span)
	case UnknownSpace:
		return fmt.Sprintf("%s(char=%q count=%d)@%s", t.Kind, t.SpaceChar, t.SpaceCount, t.Span)
	default:
		return fmt.Sprintf("%s@%s", t.Kind, t.Span)
	}
}
