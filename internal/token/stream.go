package token

// Stream is an ordered sequence of tokens in source order.
//
// A Stream is backed by a slice and is re-iterable: traversal never consumes
// or mutates it, so the same Stream can be rendered any number of times with
// identical output. Producers append with Push; consumers read with Len/At
// or take a read-only view with Tokens.
type Stream struct {
	toks []Token
}

// NewStream creates a stream seeded with the given tokens.
func NewStream(toks ...Token) *Stream {
	return &Stream{toks: toks}
}

// Push appends a token, preserving source order.
func (s *Stream) Push(t Token) {
	s.toks = append(s.toks, t)
}

// Len returns the number of top-level tokens.
func (s *Stream) Len() int {
	if s == nil {
		return 0
	}
	return len(s.toks)
}

// At returns the i-th top-level token.
func (s *Stream) At(i int) Token {
	return s.toks[i]
}

// Tokens returns the underlying tokens as a read-only view.
// Callers must not modify the returned slice.
func (s *Stream) Tokens() []Token {
	if s == nil {
		return nil
	}
	return s.toks
}
