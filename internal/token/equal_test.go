package token

import (
	"testing"
)

func TestEqual(t *testing.T) {
	base := func() *Stream {
		return NewStream(
			NewIdent("foo", sp(1, 0, 1, 3)),
			NewGroup(Paren, sp(1, 3, 1, 4), sp(1, 7, 1, 8),
				NewStream(NewLiteral("42", sp(1, 4, 1, 6)))),
		)
	}

	t.Run("identical streams", func(t *testing.T) {
		if !Equal(base(), base()) {
			t.Error("identical streams reported unequal")
		}
	})

	t.Run("spans are ignored", func(t *testing.T) {
		other := NewStream(
			NewIdent("foo", sp(5, 2, 5, 5)),
			NewGroup(Paren, sp(5, 5, 5, 6), sp(5, 9, 5, 10),
				NewStream(NewLiteral("42", sp(5, 6, 5, 8)))),
		)
		if !Equal(base(), other) {
			t.Error("streams differing only in spans reported unequal")
		}
	})

	t.Run("different literal text", func(t *testing.T) {
		other := base()
		other.toks[1].Inner.toks[0].Text = "43"
		if Equal(base(), other) {
			t.Error("streams with different literals reported equal")
		}
	})

	t.Run("different delimiter", func(t *testing.T) {
		other := base()
		other.toks[1].Delim = Bracket
		if Equal(base(), other) {
			t.Error("streams with different delimiters reported equal")
		}
	})

	t.Run("different length", func(t *testing.T) {
		other := base()
		other.Push(NewPunct(';', sp(1, 8, 1, 9)))
		if Equal(base(), other) {
			t.Error("streams of different length reported equal")
		}
	})
}

func TestEqual_IdentNFC(t *testing.T) {
	// "é" как одна руна (NFC) и как 'e' + combining acute (NFD)
	nfc := "café"
	nfd := "café"
	a := NewStream(NewIdent(nfc, sp(1, 0, 1, 4)))
	b := NewStream(NewIdent(nfd, sp(1, 0, 1, 5)))
	if !Equal(a, b) {
		t.Error("NFC and NFD forms of the same identifier reported unequal")
	}

	// но для литералов сравнение побайтовое
	la := NewStream(NewLiteral("\""+nfc+"\"", sp(1, 0, 1, 6)))
	lb := NewStream(NewLiteral("\""+nfd+"\"", sp(1, 0, 1, 7)))
	if Equal(la, lb) {
		t.Error("literals compare byte-wise, normalization must not apply")
	}
}
