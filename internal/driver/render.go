package driver

import (
	"faithful/internal/diag"
	"faithful/internal/render"
	"faithful/internal/token"
)

// RenderResult содержит результат рендера одного файла
type RenderResult struct {
	Path string
	Text string
	Bag  *diag.Bag
}

// RenderFile tokenizes a source file and renders the stream back into text,
// reproducing the original layout.
func RenderFile(path string, maxDiagnostics int) (*RenderResult, error) {
	res, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	text, err := render.Text(res.Stream)
	if err != nil {
		return nil, err
	}
	return &RenderResult{
		Path: res.FileSet.Get(res.FileID).Path,
		Text: text,
		Bag:  res.Bag,
	}, nil
}

// CheckRoundTrip renders the stream and re-tokenizes the result, verifying
// that the token tree survives unchanged.
func CheckRoundTrip(res *TokenizeResult) (ok bool, msg string) {
	text, err := render.Text(res.Stream)
	if err != nil {
		return false, "round-trip: render failed: " + err.Error()
	}

	again := TokenizeBytes("round-trip", []byte(text), int(res.Bag.Cap()))
	if again.Bag.HasErrors() {
		return false, "round-trip: re-tokenize has errors"
	}
	if !token.Equal(res.Stream, again.Stream) {
		return false, "round-trip: token streams differ"
	}
	return true, "round-trip: OK"
}
