package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"faithful/internal/diag"
	"faithful/internal/source"
)

var (
	sevError = color.New(color.FgRed, color.Bold)
	sevWarn  = color.New(color.FgYellow, color.Bold)
	sevInfo  = color.New(color.FgCyan, color.Bold)
	caretCol = color.New(color.FgGreen, color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.File)
	sev := d.Severity.String()
	if opts.Color {
		sev = sevColorOf(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%s: %s %s: %s\n", file.Path, d.Primary.Start, sev, d.Code, d.Message)
	prettySpan(w, file, d.Primary, opts)

	for _, n := range d.Notes {
		fmt.Fprintf(w, "%s:%s: note: %s\n", file.Path, n.Span.Start, n.Msg)
		prettySpan(w, file, n.Span, opts)
	}
}

func prettySpan(w io.Writer, file *source.File, sp source.Span, opts PrettyOpts) {
	first := sp.Start.Line
	for i := opts.Context; i > 0; i-- {
		if first > uint32(i) {
			if ctx := file.Line(first - uint32(i)); ctx != nil {
				fmt.Fprintf(w, "  %s\n", ctx)
			}
		}
	}

	line := file.Line(first)
	if line == nil {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// подчёркивание: отступ по экранной ширине префикса, ^ и ~~~ по ширине спана
	pad := runewidth.StringWidth(runePrefix(line, sp.Start.Col))
	width := 1
	if sp.End.Line == sp.Start.Line && sp.End.Col > sp.Start.Col {
		spanned := runeSlice(line, sp.Start.Col, sp.End.Col)
		width = max(runewidth.StringWidth(spanned), 1)
	}
	caret := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		caret = caretCol.Sprint(caret)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), caret)
}

func sevColorOf(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return sevError
	case diag.SevWarning:
		return sevWarn
	}
	return sevInfo
}

// runePrefix возвращает первые n рун строки (колонки считаются в рунах).
func runePrefix(line []byte, n uint32) string {
	runes := []rune(string(line))
	if int(n) > len(runes) {
		n = uint32(len(runes))
	}
	return string(runes[:n])
}

func runeSlice(line []byte, from, to uint32) string {
	runes := []rune(string(line))
	if int(from) > len(runes) {
		from = uint32(len(runes))
	}
	if int(to) > len(runes) {
		to = uint32(len(runes))
	}
	if from > to {
		from = to
	}
	return string(runes[from:to])
}
