package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"faithful/internal/source"
	"faithful/internal/token"
)

// Current schema version - increment when streamPayload format changes
const streamFileSchemaVersion uint16 = 1

// StreamFileExt is the conventional extension for saved token-stream files.
const StreamFileExt = ".ftok"

// streamPayload is the on-disk form of a tokenized file: enough to re-render
// it later without the original source.
type streamPayload struct {
	Schema uint16
	Path   string // путь исходника, только для сообщений
	Hash   [32]byte
	Tokens []tokenPayload
}

type posPayload struct {
	Line uint32
	Col  uint32
}

type spanPayload struct {
	Start posPayload
	End   posPayload
}

type tokenPayload struct {
	Kind  uint8
	Text  string
	Span  spanPayload
	Delim uint8
	Open  spanPayload
	Close spanPayload
	Inner []tokenPayload
}

// SaveStream writes the token stream to path as a msgpack stream file.
// The write is atomic: temp file plus rename.
func SaveStream(path string, res *TokenizeResult) error {
	file := res.FileSet.Get(res.FileID)
	payload := &streamPayload{
		Schema: streamFileSchemaVersion,
		Path:   file.Path,
		Hash:   file.Hash,
		Tokens: tokensToPayload(res.Stream),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), path)
}

// LoadStream reads a token stream saved by SaveStream. The returned path is
// the original source path recorded in the file.
func LoadStream(path string) (*token.Stream, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	var payload streamPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, "", fmt.Errorf("decode stream file: %w", err)
	}
	if payload.Schema != streamFileSchemaVersion {
		return nil, "", fmt.Errorf("stream file schema %d, want %d", payload.Schema, streamFileSchemaVersion)
	}
	return tokensFromPayload(payload.Tokens), payload.Path, nil
}

func tokensToPayload(ts *token.Stream) []tokenPayload {
	out := make([]tokenPayload, 0, ts.Len())
	for _, tok := range ts.Tokens() {
		p := tokenPayload{
			Kind: uint8(tok.Kind),
			Text: tok.Text,
			Span: spanToPayload(tok.Span),
		}
		if tok.Kind == token.Group {
			p.Delim = uint8(tok.Delim)
			p.Open = spanToPayload(tok.Open)
			p.Close = spanToPayload(tok.Close)
			p.Inner = tokensToPayload(tok.Inner)
		}
		out = append(out, p)
	}
	return out
}

func tokensFromPayload(payload []tokenPayload) *token.Stream {
	ts := token.NewStream()
	for _, p := range payload {
		if token.Kind(p.Kind) == token.Group {
			ts.Push(token.NewGroup(
				token.Delim(p.Delim),
				spanFromPayload(p.Open),
				spanFromPayload(p.Close),
				tokensFromPayload(p.Inner),
			))
			continue
		}
		ts.Push(token.Token{
			Kind: token.Kind(p.Kind),
			Text: p.Text,
			Span: spanFromPayload(p.Span),
		})
	}
	return ts
}

func spanToPayload(sp source.Span) spanPayload {
	return spanPayload{
		Start: posPayload{Line: sp.Start.Line, Col: sp.Start.Col},
		End:   posPayload{Line: sp.End.Line, Col: sp.End.Col},
	}
}

func spanFromPayload(sp spanPayload) source.Span {
	return source.Span{
		Start: source.Pos{Line: sp.Start.Line, Col: sp.Start.Col},
		End:   source.Pos{Line: sp.End.Line, Col: sp.End.Col},
	}
}
