package token

// Kind discriminates the token variants. The set is closed: rendering
// dispatches on it exhaustively.
type Kind uint8

const (
	// Ident is an identifier or keyword-like word.
	Ident Kind = iota
	// Literal is a number or string, already source-formatted.
	Literal
	// Punct is a single punctuation character.
	Punct
	// Group is a delimited (or invisible) sub-stream.
	Group
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "Ident"
	case Literal:
		return "Literal"
	case Punct:
		return "Punct"
	case Group:
		return "Group"
	}
	return "Unknown"
}

// Delim is the bracket style of a Group.
type Delim uint8

const (
	// Paren is a () group.
	Paren Delim = iota
	// Brace is a {} group.
	Brace
	// Bracket is a [] group.
	Bracket
	// None is an invisible group: no bracket characters are rendered, but the
	// contents still carry their own spans and participate in layout.
	None
)

func (d Delim) String() string {
	switch d {
	case Paren:
		return "Paren"
	case Brace:
		return "Brace"
	case Bracket:
		return "Bracket"
	case None:
		return "None"
	}
	return "Unknown"
}

// OpenRune returns the opening delimiter character and whether one exists.
func (d Delim) OpenRune() (byte, bool) {
	switch d {
	case Paren:
		return '(', true
	case Brace:
		return '{', true
	case Bracket:
		return '[', true
	}
	return 0, false
}

// CloseRune returns the closing delimiter character and whether one exists.
func (d Delim) CloseRune() (byte, bool) {
	switch d {
	case Paren:
		return ')', true
	case Brace:
		return '}', true
	case Bracket:
		return ']', true
	}
	return 0, false
}
