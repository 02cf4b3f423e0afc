package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"faithful/internal/source"
	"faithful/internal/token"
)

// TokensPretty выводит дерево токенов в человекочитаемом формате,
// вложенные группы — с отступом.
func TokensPretty(w io.Writer, ts *token.Stream) error {
	return tokensPretty(w, ts, 0)
}

func tokensPretty(w io.Writer, ts *token.Stream, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, tok := range ts.Tokens() {
		if tok.Kind == token.Group {
			if _, err := fmt.Fprintf(w, "%s%s %s at %s..%s\n",
				indent, tok.Kind, tok.Delim, tok.Open, tok.Close); err != nil {
				return err
			}
			if err := tokensPretty(w, tok.Inner, depth+1); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%-7s %q at %s\n",
			indent, tok.Kind, tok.Text, tok.Span); err != nil {
			return err
		}
	}
	return nil
}

// TokenOutput is the JSON projection of a token.
type TokenOutput struct {
	Kind  string        `json:"kind"`
	Text  string        `json:"text,omitempty"`
	Span  spanOutput    `json:"span"`
	Delim string        `json:"delim,omitempty"`
	Open  *spanOutput   `json:"open,omitempty"`
	Close *spanOutput   `json:"close,omitempty"`
	Inner []TokenOutput `json:"inner,omitempty"`
}

type posOutput struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type spanOutput struct {
	Start posOutput `json:"start"`
	End   posOutput `json:"end"`
}

func spanOut(sp source.Span) spanOutput {
	return spanOutput{
		Start: posOutput{Line: sp.Start.Line, Col: sp.Start.Col},
		End:   posOutput{Line: sp.End.Line, Col: sp.End.Col},
	}
}

// TokensJSON выводит дерево токенов в JSON формате.
func TokensJSON(w io.Writer, ts *token.Stream) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokensOut(ts))
}

func tokensOut(ts *token.Stream) []TokenOutput {
	out := make([]TokenOutput, 0, ts.Len())
	for _, tok := range ts.Tokens() {
		entry := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: spanOut(tok.Span),
		}
		if tok.Kind == token.Group {
			open := spanOut(tok.Open)
			closeSpan := spanOut(tok.Close)
			entry.Delim = tok.Delim.String()
			entry.Open = &open
			entry.Close = &closeSpan
			entry.Inner = tokensOut(tok.Inner)
		}
		out = append(out, entry)
	}
	return out
}
