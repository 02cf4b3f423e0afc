package token

import (
	"faithful/internal/source"
)

// Token represents a single token with its recorded source location.
// Leaf tokens (Ident, Literal, Punct) carry Text and Span. Group tokens carry
// Delim, the Open and Close delimiter spans, and the Inner stream; their Text
// is empty and Span covers Open through Close.
type Token struct {
	Kind  Kind
	Text  string
	Span  source.Span
	Delim Delim
	Open  source.Span
	Close source.Span
	Inner *Stream
}

// NewIdent builds an identifier token.
func NewIdent(text string, sp source.Span) Token {
	return Token{Kind: Ident, Text: text, Span: sp}
}

// NewLiteral builds a literal token; text is the source-formatted form.
func NewLiteral(text string, sp source.Span) Token {
	return Token{Kind: Literal, Text: text, Span: sp}
}

// NewPunct builds a single-character punctuation token.
func NewPunct(ch byte, sp source.Span) Token {
	return Token{Kind: Punct, Text: string(ch), Span: sp}
}

// NewGroup builds a group token from its delimiter spans and inner stream.
// A nil inner stream is treated as empty.
func NewGroup(delim Delim, open, close source.Span, inner *Stream) Token {
	if inner == nil {
		inner = NewStream()
	}
	return Token{
		Kind:  Group,
		Span:  open.Cover(close),
		Delim: delim,
		Open:  open,
		Close: close,
		Inner: inner,
	}
}

// IsLeaf reports whether the token is an Ident, Literal, or Punct.
func (t Token) IsLeaf() bool {
	return t.Kind != Group
}
