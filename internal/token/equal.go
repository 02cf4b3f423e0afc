package token

import (
	"golang.org/x/text/unicode/norm"
)

// Equal reports whether two streams carry the same tokens in the same order,
// ignoring spans. Identifier text is compared under NFC normalization, since
// the tokenizer folds Unicode identifiers that way and a re-tokenized render
// may differ only in normalization form.
func Equal(a, b *Stream) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !tokenEqual(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

func tokenEqual(a, b Token) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Ident:
		return identEqual(a.Text, b.Text)
	case Literal, Punct:
		return a.Text == b.Text
	case Group:
		return a.Delim == b.Delim && Equal(a.Inner, b.Inner)
	}
	return false
}

func identEqual(a, b string) bool {
	if a == b {
		return true
	}
	return norm.NFC.String(a) == norm.NFC.String(b)
}
