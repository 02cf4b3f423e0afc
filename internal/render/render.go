package render

import (
	"io"
	"strings"

	"faithful/internal/source"
	"faithful/internal/token"
)

var (
	spaceRun   = strings.Repeat(" ", 64)
	newlineRun = strings.Repeat("\n", 16)
)

// reconcile writes the whitespace that moves the cursor from `from` to `to`.
// Same line: the column difference in spaces. Different lines: the line
// difference in newlines, then `to.Col` spaces to indent the new line from
// column zero. A target that precedes the cursor is an InconsistentSpanError;
// direction is checked before any subtraction so malformed spans can never
// underflow.
func reconcile(w io.Writer, from, to source.Pos) error {
	if to.Before(from) {
		return &InconsistentSpanError{From: from, To: to}
	}
	if from.Line == to.Line {
		return writeRun(w, spaceRun, int(to.Col-from.Col))
	}
	if err := writeRun(w, newlineRun, int(to.Line-from.Line)); err != nil {
		return err
	}
	return writeRun(w, spaceRun, int(to.Col))
}

func writeRun(w io.Writer, run string, n int) error {
	for n > 0 {
		k := min(n, len(run))
		if _, err := io.WriteString(w, run[:k]); err != nil {
			return sinkErr(err)
		}
		n -= k
	}
	return nil
}

// renderToken dispatches on the token kind and returns the new cursor: the
// end position of what was just emitted.
func renderToken(w io.Writer, tok token.Token, cursor source.Pos) (source.Pos, error) {
	if tok.Kind == token.Group {
		return renderGroup(w, tok, cursor)
	}
	if err := reconcile(w, cursor, tok.Span.Start); err != nil {
		return cursor, err
	}
	if _, err := io.WriteString(w, tok.Text); err != nil {
		return cursor, sinkErr(err)
	}
	return tok.Span.End, nil
}

func renderGroup(w io.Writer, tok token.Token, cursor source.Pos) (source.Pos, error) {
	if err := reconcile(w, cursor, tok.Open.Start); err != nil {
		return cursor, err
	}
	if ch, ok := tok.Delim.OpenRune(); ok {
		if _, err := w.Write([]byte{ch}); err != nil {
			return cursor, sinkErr(err)
		}
	}

	inner, err := renderStream(w, tok.Inner, tok.Open.End)
	if err != nil {
		return cursor, err
	}

	if err := reconcile(w, inner, tok.Close.Start); err != nil {
		return cursor, err
	}
	if ch, ok := tok.Delim.CloseRune(); ok {
		if _, err := w.Write([]byte{ch}); err != nil {
			return cursor, sinkErr(err)
		}
	}
	return tok.Close.End, nil
}

// renderStream threads the cursor through the stream in order: each token's
// end position becomes the next token's input cursor. An empty stream is a
// no-op and returns the cursor unchanged.
func renderStream(w io.Writer, ts *token.Stream, cursor source.Pos) (source.Pos, error) {
	for _, tok := range ts.Tokens() {
		next, err := renderToken(w, tok, cursor)
		if err != nil {
			return cursor, err
		}
		cursor = next
	}
	return cursor, nil
}

// startPos returns the position a token begins at in the source.
func startPos(tok token.Token) source.Pos {
	if tok.Kind == token.Group {
		return tok.Open.Start
	}
	return tok.Span.Start
}

// RenderTo renders the stream into w. The cursor is seeded from the first
// token's own start position, so the stream renders without leading
// indentation artifacts. An empty stream writes nothing. The stream is not
// consumed: RenderTo may be called any number of times with identical output.
func RenderTo(w io.Writer, ts *token.Stream) error {
	if ts.Len() == 0 {
		return nil
	}
	_, err := renderStream(w, ts, startPos(ts.At(0)))
	return err
}

// RenderFrom renders the stream into w starting from an explicit cursor and
// returns the final cursor. It is the embedding variant: callers composing a
// sub-render inside a larger document thread their own cursor through it.
func RenderFrom(w io.Writer, ts *token.Stream, from source.Pos) (source.Pos, error) {
	return renderStream(w, ts, from)
}

// Text renders the stream to a string.
func Text(ts *token.Stream) (string, error) {
	var b strings.Builder
	if err := RenderTo(&b, ts); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Display wraps a stream in a fmt.Stringer that renders faithfully on demand.
// String cannot return an error; a failing render embeds the error text in
// the output the way fmt marks failing verbs. Prefer Text or RenderTo when
// the error matters.
type Display struct {
	stream *token.Stream
}

// NewDisplay returns a Displayable view of the stream. The stream is shared,
// not copied; it must not be mutated while the Display is in use.
func NewDisplay(ts *token.Stream) Display {
	return Display{stream: ts}
}

func (d Display) String() string {
	text, err := Text(d.stream)
	if err != nil {
		return "%!render(" + err.Error() + ")"
	}
	return text
}
