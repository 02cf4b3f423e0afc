package lexer

import (
	"testing"

	"faithful/internal/diag"
	"faithful/internal/source"
	"faithful/internal/testkit"
	"faithful/internal/token"
)

func lexString(t *testing.T, src string) (*token.Stream, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("lex.src", []byte(src))
	bag := diag.NewBag(16)
	ts := Tokenize(fs.Get(id), Options{Reporter: &diag.BagReporter{Bag: bag}})
	if !bag.HasErrors() {
		if err := testkit.CheckStreamInvariants(ts); err != nil {
			t.Fatalf("lexer broke a span invariant: %v", err)
		}
	}
	return ts, bag
}

func wantSpan(t *testing.T, got source.Span, l0, c0, l1, c1 uint32) {
	t.Helper()
	want := source.Span{
		Start: source.Pos{Line: l0, Col: c0},
		End:   source.Pos{Line: l1, Col: c1},
	}
	if got != want {
		t.Errorf("span = %v, want %v", got, want)
	}
}

func TestTokenize_LeafTokens(t *testing.T) {
	ts, bag := lexString(t, "foo bar;")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if ts.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ts.Len())
	}

	foo := ts.At(0)
	if foo.Kind != token.Ident || foo.Text != "foo" {
		t.Errorf("token 0 = %v %q", foo.Kind, foo.Text)
	}
	wantSpan(t, foo.Span, 1, 0, 1, 3)

	bar := ts.At(1)
	if bar.Kind != token.Ident || bar.Text != "bar" {
		t.Errorf("token 1 = %v %q", bar.Kind, bar.Text)
	}
	wantSpan(t, bar.Span, 1, 4, 1, 7)

	semi := ts.At(2)
	if semi.Kind != token.Punct || semi.Text != ";" {
		t.Errorf("token 2 = %v %q", semi.Kind, semi.Text)
	}
	wantSpan(t, semi.Span, 1, 7, 1, 8)
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"1e10", "1e10"},
		{"2.5e-3", "2.5e-3"},
		{"0xFF", "0xFF"},
		{"0b1010", "0b1010"},
		{"1_000_000", "1_000_000"},
		{".5", ".5"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			ts, bag := lexString(t, tt.src)
			if bag.HasErrors() {
				t.Fatalf("unexpected diagnostics: %v", bag.Items())
			}
			if ts.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", ts.Len())
			}
			tok := ts.At(0)
			if tok.Kind != token.Literal || tok.Text != tt.want {
				t.Errorf("token = %v %q, want Literal %q", tok.Kind, tok.Text, tt.want)
			}
		})
	}
}

func TestTokenize_NumberThenRange(t *testing.T) {
	// "1..2" — точка без цифры после не принадлежит числу
	ts, _ := lexString(t, "1..2")
	texts := make([]string, 0, ts.Len())
	for _, tok := range ts.Tokens() {
		texts = append(texts, tok.Text)
	}
	want := []string{"1", ".", ".", "2"}
	if len(texts) != len(want) {
		t.Fatalf("tokens = %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("tokens = %v, want %v", texts, want)
		}
	}
}

func TestTokenize_StringLiteral(t *testing.T) {
	ts, bag := lexString(t, `x = "a\"b"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if ts.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ts.Len())
	}
	lit := ts.At(2)
	if lit.Kind != token.Literal || lit.Text != `"a\"b"` {
		t.Errorf("literal = %v %q", lit.Kind, lit.Text)
	}
	wantSpan(t, lit.Span, 1, 4, 1, 10)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, bag := lexString(t, `"oops`)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for unterminated string")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v, want LexUnterminatedString", bag.Items()[0].Code)
	}
}

func TestTokenize_Groups(t *testing.T) {
	ts, bag := lexString(t, "f(x) { y[0] }")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if ts.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (f, parens, braces)", ts.Len())
	}

	parens := ts.At(1)
	if parens.Kind != token.Group || parens.Delim != token.Paren {
		t.Fatalf("token 1 = %v %v", parens.Kind, parens.Delim)
	}
	wantSpan(t, parens.Open, 1, 1, 1, 2)
	wantSpan(t, parens.Close, 1, 3, 1, 4)
	if parens.Inner.Len() != 1 || parens.Inner.At(0).Text != "x" {
		t.Errorf("paren contents = %v", parens.Inner.Tokens())
	}

	braces := ts.At(2)
	if braces.Kind != token.Group || braces.Delim != token.Brace {
		t.Fatalf("token 2 = %v %v", braces.Kind, braces.Delim)
	}
	if braces.Inner.Len() != 2 {
		t.Fatalf("brace contents = %d tokens, want 2", braces.Inner.Len())
	}
	brackets := braces.Inner.At(1)
	if brackets.Kind != token.Group || brackets.Delim != token.Bracket {
		t.Fatalf("nested group = %v %v", brackets.Kind, brackets.Delim)
	}
	if brackets.Inner.Len() != 1 || brackets.Inner.At(0).Text != "0" {
		t.Errorf("bracket contents = %v", brackets.Inner.Tokens())
	}
}

func TestTokenize_UnclosedGroup(t *testing.T) {
	ts, bag := lexString(t, "(a")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for unclosed delimiter")
	}
	if bag.Items()[0].Code != diag.LexUnclosedDelimiter {
		t.Errorf("code = %v, want LexUnclosedDelimiter", bag.Items()[0].Code)
	}
	if ts.Len() != 1 || ts.At(0).Kind != token.Group {
		t.Fatalf("recovery stream = %v", ts.Tokens())
	}
	group := ts.At(0)
	if group.Inner.Len() != 1 || group.Inner.At(0).Text != "a" {
		t.Errorf("recovered group contents = %v", group.Inner.Tokens())
	}
	if !group.Close.Empty() {
		t.Errorf("recovered close span = %v, want empty", group.Close)
	}
}

func TestTokenize_UnmatchedCloser(t *testing.T) {
	ts, bag := lexString(t, "a ) b")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for unmatched closer")
	}
	if bag.Items()[0].Code != diag.LexUnmatchedCloser {
		t.Errorf("code = %v, want LexUnmatchedCloser", bag.Items()[0].Code)
	}
	if ts.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (closer dropped)", ts.Len())
	}
	if ts.At(0).Text != "a" || ts.At(1).Text != "b" {
		t.Errorf("recovered tokens = %q, %q", ts.At(0).Text, ts.At(1).Text)
	}
}

func TestTokenize_CommentsAreTrivia(t *testing.T) {
	ts, bag := lexString(t, "a // tail\n/* block\n   comment */ b")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if ts.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ts.Len())
	}
	b := ts.At(1)
	if b.Text != "b" {
		t.Fatalf("token 1 = %q", b.Text)
	}
	// b стоит после блочного комментария на третьей строке
	wantSpan(t, b.Span, 3, 14, 3, 15)
}

func TestTokenize_UnicodeColumnsCountRunes(t *testing.T) {
	ts, bag := lexString(t, "café x")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if ts.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ts.Len())
	}
	wantSpan(t, ts.At(0).Span, 1, 0, 1, 4)
	wantSpan(t, ts.At(1).Span, 1, 5, 1, 6)
}

func TestTokenize_Empty(t *testing.T) {
	ts, bag := lexString(t, "")
	if bag.Len() != 0 || ts.Len() != 0 {
		t.Errorf("empty input produced %d tokens, %d diagnostics", ts.Len(), bag.Len())
	}
}
