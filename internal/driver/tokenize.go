package driver

import (
	"faithful/internal/diag"
	"faithful/internal/lexer"
	"faithful/internal/source"
	"faithful/internal/token"
)

// TokenizeResult содержит результат токенизации одного файла
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Stream  *token.Stream
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and lexes it into a token stream.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, fileID, maxDiagnostics), nil
}

// TokenizeBytes lexes in-memory content (stdin, tests).
func TokenizeBytes(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeLoaded(fs, fileID, maxDiagnostics)
}

func tokenizeLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	stream := lexer.Tokenize(fs.Get(fileID), lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	return &TokenizeResult{
		FileSet: fs,
		FileID:  fileID,
		Stream:  stream,
		Bag:     bag,
	}
}
