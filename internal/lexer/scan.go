package lexer

import (
	"faithful/internal/diag"
	"faithful/internal/token"
)

// scanIdent сканирует идентификатор. Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	r, _ := lx.peekRune()
	if r < utf8RuneSelf {
		// ASCII fast-path
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		// возможный Unicode-хвост
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	} else {
		if !isIdentStartRune(r) {
			// не буква — отдаём как пунктуацию
			return lx.scanPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	return token.NewIdent(lx.cursor.TextFrom(start), lx.cursor.SpanFrom(start))
}

// scanNumber сканирует числовой литерал: int, hex/bin/oct с префиксом,
// float с точкой и экспонентой. Text — source-formatted, как в оригинале.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X' || b1 == 'b' || b1 == 'B' || b1 == 'o' || b1 == 'O') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
			digits++
		}
		sp := lx.cursor.SpanFrom(start)
		if digits == 0 {
			lx.report(diag.LexBadNumber, sp, "missing digits after numeric prefix")
		}
		return token.NewLiteral(lx.cursor.TextFrom(start), sp)
	}

	lx.eatDigits()

	// дробная часть: '.' только если за ней цифра (иначе это Dot-пунктуация)
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		lx.eatDigits()
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		m := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// 'e' оказался началом идентификатора, откатываемся
			lx.cursor.Reset(m)
		} else {
			lx.eatDigits()
		}
	}

	return token.NewLiteral(lx.cursor.TextFrom(start), lx.cursor.SpanFrom(start))
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// scanString сканирует "..." с пропуском escape-последовательностей.
// Перевод строки внутри литерала и EOF без кавычки — диагностика.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return token.NewLiteral(lx.cursor.TextFrom(start), lx.cursor.SpanFrom(start))
		}
		if b == '\\' {
			// съесть '\' и следующий байт, глубоко не валидируем
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.NewLiteral(lx.cursor.TextFrom(start), sp)
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.NewLiteral(lx.cursor.TextFrom(start), sp)
}

// scanPunct сканирует ровно одну руну пунктуации.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	return token.Token{
		Kind: token.Punct,
		Text: lx.cursor.TextFrom(start),
		Span: lx.cursor.SpanFrom(start),
	}
}
