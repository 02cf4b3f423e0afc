package token

import (
	"testing"

	"faithful/internal/source"
)

func sp(l0, c0, l1, c1 uint32) source.Span {
	return source.Span{
		Start: source.Pos{Line: l0, Col: c0},
		End:   source.Pos{Line: l1, Col: c1},
	}
}

func TestStream_Reiterable(t *testing.T) {
	ts := NewStream(
		NewIdent("foo", sp(1, 0, 1, 3)),
		NewPunct(';', sp(1, 3, 1, 4)),
	)

	// два прохода дают одно и то же
	for pass := 0; pass < 2; pass++ {
		if ts.Len() != 2 {
			t.Fatalf("pass %d: Len() = %d, want 2", pass, ts.Len())
		}
		got := make([]string, 0, ts.Len())
		for _, tok := range ts.Tokens() {
			got = append(got, tok.Text)
		}
		if got[0] != "foo" || got[1] != ";" {
			t.Errorf("pass %d: texts = %v", pass, got)
		}
	}
}

func TestStream_PushPreservesOrder(t *testing.T) {
	ts := NewStream()
	ts.Push(NewIdent("a", sp(1, 0, 1, 1)))
	ts.Push(NewIdent("b", sp(1, 2, 1, 3)))

	if ts.At(0).Text != "a" || ts.At(1).Text != "b" {
		t.Errorf("order lost: %q, %q", ts.At(0).Text, ts.At(1).Text)
	}
}

func TestNewGroup_SpanCoversDelimiters(t *testing.T) {
	g := NewGroup(Paren, sp(1, 0, 1, 1), sp(2, 5, 2, 6), nil)
	want := sp(1, 0, 2, 6)
	if g.Span != want {
		t.Errorf("group span = %v, want %v", g.Span, want)
	}
	if g.Inner == nil || g.Inner.Len() != 0 {
		t.Error("nil inner stream must normalize to an empty stream")
	}
	if g.IsLeaf() {
		t.Error("group reported as leaf")
	}
}

func TestDelim_Runes(t *testing.T) {
	tests := []struct {
		delim       Delim
		open, close byte
		visible     bool
	}{
		{Paren, '(', ')', true},
		{Brace, '{', '}', true},
		{Bracket, '[', ']', true},
		{None, 0, 0, false},
	}
	for _, tt := range tests {
		o, ok := tt.delim.OpenRune()
		if ok != tt.visible || o != tt.open {
			t.Errorf("%v.OpenRune() = %q, %v", tt.delim, o, ok)
		}
		c, ok := tt.delim.CloseRune()
		if ok != tt.visible || c != tt.close {
			t.Errorf("%v.CloseRune() = %q, %v", tt.delim, c, ok)
		}
	}
}
