package testkit

import (
	"fmt"

	"faithful/internal/source"
	"faithful/internal/token"
)

// CheckStreamInvariants runs the span invariants the renderer relies on:
// 1) every span is ordered (start does not follow end)
// 2) sibling spans are non-decreasing in reading order
// 3) a group's inner tokens lie between its open span's end and its close
//    span's start
//
// The renderer itself trusts its input and never re-validates; tests use this
// to assert that the lexer actually delivers on that trust.
func CheckStreamInvariants(ts *token.Stream) error {
	return checkStream(ts, nil, nil)
}

func checkStream(ts *token.Stream, lo, hi *source.Pos) error {
	var prevEnd *source.Pos
	for i, tok := range ts.Tokens() {
		start, end := tokenExtent(tok)
		if end.Before(start) {
			return fmt.Errorf("token %d: span end %s precedes start %s", i, end, start)
		}
		if prevEnd != nil && start.Before(*prevEnd) {
			return fmt.Errorf("token %d: start %s precedes previous end %s", i, start, *prevEnd)
		}
		if lo != nil && start.Before(*lo) {
			return fmt.Errorf("token %d: start %s escapes group open %s", i, start, *lo)
		}
		if hi != nil && hi.Before(end) {
			return fmt.Errorf("token %d: end %s escapes group close %s", i, end, *hi)
		}

		if tok.Kind == token.Group {
			innerLo := tok.Open.End
			innerHi := tok.Close.Start
			if err := checkStream(tok.Inner, &innerLo, &innerHi); err != nil {
				return fmt.Errorf("group %d: %w", i, err)
			}
		}

		prevEnd = &end
	}
	return nil
}

func tokenExtent(tok token.Token) (start, end source.Pos) {
	if tok.Kind == token.Group {
		return tok.Open.Start, tok.Close.End
	}
	return tok.Span.Start, tok.Span.End
}
