package driver

import (
	"os"
	"path/filepath"
	"testing"

	"faithful/internal/render"
	"faithful/internal/token"
)

func TestSaveLoadStream(t *testing.T) {
	src := "fn add(a, b) {\n    a + b\n}"
	res := TokenizeBytes("add.src", []byte(src), 16)
	if res.Bag.HasErrors() {
		t.Fatalf("tokenize diagnostics: %v", res.Bag.Items())
	}

	path := filepath.Join(t.TempDir(), "add"+StreamFileExt)
	if err := SaveStream(path, res); err != nil {
		t.Fatalf("SaveStream failed: %v", err)
	}

	loaded, srcPath, err := LoadStream(path)
	if err != nil {
		t.Fatalf("LoadStream failed: %v", err)
	}
	if srcPath != "add.src" {
		t.Errorf("recorded source path = %q, want %q", srcPath, "add.src")
	}
	if !token.Equal(res.Stream, loaded) {
		t.Error("loaded stream differs from the saved one")
	}

	// спаны переживают сериализацию: рендер обоих стримов идентичен
	want, err := render.Text(res.Stream)
	if err != nil {
		t.Fatalf("render original: %v", err)
	}
	got, err := render.Text(loaded)
	if err != nil {
		t.Fatalf("render loaded: %v", err)
	}
	if got != want {
		t.Errorf("render mismatch after save/load:\nwant %q\ngot  %q", want, got)
	}
	if got != src {
		t.Errorf("render lost layout:\nwant %q\ngot  %q", src, got)
	}
}

func TestLoadStream_MissingFile(t *testing.T) {
	_, _, err := LoadStream(filepath.Join(t.TempDir(), "absent"+StreamFileExt))
	if err == nil {
		t.Fatal("LoadStream succeeded on a missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("error = %v, want not-exist", err)
	}
}
