package lexer

import (
	"faithful/internal/diag"
	"faithful/internal/source"
	"faithful/internal/token"
)

// Lexer produces the token tree the renderer consumes. Whitespace and
// comments are skipped entirely: layout survives only through spans.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// Tokenize lexes the whole file into a token stream. Findings (unterminated
// strings, unbalanced delimiters, unknown characters) go to opts.Reporter;
// lexing always runs to EOF and returns a usable stream.
func Tokenize(file *source.File, opts Options) *token.Stream {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
	ts := lx.lexStream(0)
	// всё после закрытия верхнего стрима — непарные закрывающие скобки
	for !lx.cursor.EOF() {
		m := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.report(diag.LexUnmatchedCloser, lx.cursor.SpanFrom(m),
			"unmatched closing delimiter "+lx.cursor.TextFrom(m))
		rest := lx.lexStream(0)
		for _, tok := range rest.Tokens() {
			ts.Push(tok)
		}
	}
	return ts
}

// lexStream scans tokens until EOF or until the closing delimiter byte is the
// next significant character (not consumed). closer == 0 means top level.
func (lx *Lexer) lexStream(closer byte) *token.Stream {
	ts := token.NewStream()
	for {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			return ts
		}
		b := lx.cursor.Peek()
		if closer != 0 && b == closer {
			return ts
		}

		switch {
		case b == '(':
			ts.Push(lx.scanGroup(token.Paren, ')'))
		case b == '{':
			ts.Push(lx.scanGroup(token.Brace, '}'))
		case b == '[':
			ts.Push(lx.scanGroup(token.Bracket, ']'))
		case b == ')' || b == '}' || b == ']':
			// закрывающая скобка чужой группы — отдаём решение вызывающему
			return ts
		case isIdentStartByte(b) || b >= utf8RuneSelf:
			ts.Push(lx.scanIdent())
		case isDec(b):
			ts.Push(lx.scanNumber())
		case b == '.' && lx.isNumberAfterDot():
			ts.Push(lx.scanNumber())
		case b == '"':
			ts.Push(lx.scanString())
		default:
			ts.Push(lx.scanPunct())
		}
	}
}

// scanGroup consumes the opening delimiter, lexes the inner stream, and
// consumes the matching closer. A missing closer is reported against the
// opening span and the group is closed with an empty span at the current
// position.
func (lx *Lexer) scanGroup(delim token.Delim, closer byte) token.Token {
	openMark := lx.cursor.Mark()
	lx.cursor.Bump()
	openSpan := lx.cursor.SpanFrom(openMark)

	inner := lx.lexStream(closer)

	lx.skipTrivia()
	closeMark := lx.cursor.Mark()
	if lx.cursor.Eat(closer) {
		return token.NewGroup(delim, openSpan, lx.cursor.SpanFrom(closeMark), inner)
	}

	lx.report(diag.LexUnclosedDelimiter, openSpan, "unclosed delimiter")
	return token.NewGroup(delim, openSpan, lx.cursor.SpanFrom(closeMark), inner)
}

// skipTrivia съедает пробелы, табы, переводы строк и комментарии.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}
		if b == '/' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '/' {
				// line comment: до \n (не съедая его)
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
				continue
			} else if ok && b0 == '/' && b1 == '*' {
				lx.skipBlockComment()
				continue
			}
		}
		return
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	depth := 1
	for !lx.cursor.EOF() {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
			if depth == 0 {
				return
			}
			continue
		}
		if ok && b0 == '/' && b1 == '*' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
			continue
		}
		lx.cursor.Bump()
	}
	lx.report(diag.LexUnterminatedBlock, lx.cursor.SpanFrom(start), "unterminated block comment")
}

func (lx *Lexer) isNumberAfterDot() bool {
	_, b1, ok := lx.cursor.Peek2()
	return ok && isDec(b1)
}
