package tailwind

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnippetRelease(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.css")

	if err := os.WriteFile(path, []byte(".prose{color:red}"), 0666); err != nil {
		t.Fatal(err)
	}

	result := &Result{StylePath: path}
	snippet, err := result.Snippet()

	if err != nil {
		t.Fatal(err)
	}

	if snippet != "<style>.prose{color:red}</style>" {
		t.Fatalf("unexpected snippet: %s", snippet)
	}
}

func TestSnippetJit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jit_config.js")
	config := "tailwind.config = {}"

	if err := os.WriteFile(path, []byte(config), 0666); err != nil {
		t.Fatal(err)
	}

	result := &Result{
		Jit:           true,
		JitConfigPath: path,
		JitSrc:        "https://cdn.example.com",
	}

	snippet, err := result.Snippet()

	if err != nil {
		t.Fatal(err)
	}

	configAt := strings.Index(snippet, config)
	cdnAt := strings.Index(snippet, `<script src="https://cdn.example.com">`)

	if configAt < 0 || cdnAt < 0 {
		t.Fatalf("snippet is missing the config or the cdn script: %s", snippet)
	}

	if configAt > cdnAt {
		t.Fatalf("the config script has to come before the cdn script: %s", snippet)
	}
}
