// Package render turns a token stream back into text, reproducing the
// original layout instead of a canonical re-formatting.
//
// The renderer walks the token tree with a cursor (line, column). Before
// emitting a token's text it writes exactly the spaces and newlines needed to
// move the cursor from its previous position to the token's recorded start.
// For input lexed from source that used only spaces and newlines for layout,
// the output is byte-identical to the slice of the original source covered by
// the stream.
//
// Назначение: точное воспроизведение исходного layout по спанам токенов.
// Не делает: pretty-print, валидации монотонности спанов, обработки табов.
// Зависимости: internal/source, internal/token.
package render
