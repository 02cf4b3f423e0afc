// Package token defines the lexical token tree the renderer consumes.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End in line/column coordinates).
//   - A Group's Inner stream lies between Open.End and Close.Start; the
//     renderer trusts this and does not re-validate it.
//   - Whitespace and comments never appear in a Stream; layout is recovered
//     from spans alone.
package token
