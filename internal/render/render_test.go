package render

import (
	"testing"

	"faithful/internal/source"
	"faithful/internal/token"
)

func pos(line, col uint32) source.Pos {
	return source.Pos{Line: line, Col: col}
}

func span(l0, c0, l1, c1 uint32) source.Span {
	return source.Span{Start: pos(l0, c0), End: pos(l1, c1)}
}

func ident(text string, l0, c0, l1, c1 uint32) token.Token {
	return token.NewIdent(text, span(l0, c0, l1, c1))
}

func punct(ch byte, l0, c0, l1, c1 uint32) token.Token {
	return token.NewPunct(ch, span(l0, c0, l1, c1))
}

func TestRenderLeafSpacing(t *testing.T) {
	tests := []struct {
		name   string
		stream *token.Stream
		want   string
	}{
		{
			name:   "empty stream",
			stream: token.NewStream(),
			want:   "",
		},
		{
			name: "same line, two columns apart",
			stream: token.NewStream(
				ident("foo", 1, 0, 1, 3),
				ident("bar", 1, 5, 1, 8),
			),
			want: "foo  bar",
		},
		{
			name: "adjacent tokens, zero spaces",
			stream: token.NewStream(
				ident("foo", 1, 0, 1, 3),
				punct('!', 1, 3, 1, 4),
			),
			want: "foo!",
		},
		{
			name: "next line with indentation",
			stream: token.NewStream(
				ident("foo", 1, 0, 1, 3),
				ident("bar", 2, 2, 2, 5),
			),
			want: "foo\n  bar",
		},
		{
			name: "blank lines between tokens",
			stream: token.NewStream(
				ident("a", 1, 0, 1, 1),
				ident("b", 4, 0, 4, 1),
			),
			want: "a\n\n\nb",
		},
		{
			name: "first token indented on its own line",
			stream: token.NewStream(
				ident("x", 3, 4, 3, 5),
			),
			want: "x",
		},
		{
			name: "literal keeps its source formatting",
			stream: token.NewStream(
				token.NewLiteral("3.14", span(1, 0, 1, 4)),
				token.NewLiteral(`"str"`, span(1, 6, 1, 11)),
			),
			want: `3.14  "str"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(tt.stream)
			if err != nil {
				t.Fatalf("Text() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
