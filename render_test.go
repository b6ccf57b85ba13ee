package tailwind

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestRenderConfig(t *testing.T) {

	type Case struct {
		Document map[string]any
		SrcDir   string
	}

	tests := []Case{
		{
			Document: defaultTailwindConfig(),
			SrcDir:   "/proj/src",
		},
		{
			Document: map[string]any{"content": []any{"{src_dir}/**/*.html"}},
			SrcDir:   "/proj/src",
		},
		{
			Document: map[string]any{
				"content": []any{"{src_dir}/**/*.html", "{src_dir}/**/*.go"},
				"theme":   map[string]any{"extend": map[string]any{"colors": map[string]any{"note": "{src_dir}"}}},
			},
			SrcDir: "/some/where/else",
		},
		{
			Document: map[string]any{"content": []any{"no token here"}},
			SrcDir:   "/proj/src",
		},
	}

	for _, c := range tests {
		raw, err := json.MarshalIndent(c.Document, "", "    ")

		if err != nil {
			t.Fatal(err)
		}

		occurrences := strings.Count(string(raw), SRC_DIR_TOKEN)

		result, err := renderConfig(c.Document, c.SrcDir)

		if err != nil {
			t.Fatal(err)
		}

		if strings.Contains(result, SRC_DIR_TOKEN) {
			t.Fatalf("token left after substitution:\n%s", result)
		}

		if substituted := strings.Count(result, c.SrcDir); substituted != occurrences {
			t.Fatalf("expected %d substitutions, got %d:\n%s", occurrences, substituted, result)
		}

		var document map[string]any

		if err := json.Unmarshal([]byte(result), &document); err != nil {
			t.Fatalf("rendered config is not valid json: %v\n%s", err, result)
		}
	}
}

func TestRenderConfigEscaping(t *testing.T) {

	type Case struct {
		SrcDir   string
		Expected string
	}

	tests := []Case{
		{
			SrcDir:   `/pro"j/src`,
			Expected: `/pro"j/src/**/*.html`,
		},
		{
			SrcDir:   `C:\proj\src`,
			Expected: `C:\proj\src/**/*.html`,
		},
	}

	for _, c := range tests {
		result, err := renderConfig(map[string]any{"content": []any{"{src_dir}/**/*.html"}}, c.SrcDir)

		if err != nil {
			t.Fatal(err)
		}

		var document struct {
			Content []string `json:"content"`
		}

		if err := json.Unmarshal([]byte(result), &document); err != nil {
			t.Fatalf("rendered config is not valid json: %v\n%s", err, result)
		}

		if len(document.Content) != 1 || document.Content[0] != c.Expected {
			t.Fatalf("failed case:\n SrcDir:\t%s\n Expected:\t%s\n Output:\t%v\n", c.SrcDir, c.Expected, document.Content)
		}
	}
}

func TestRenderConfigInvalidSrcDir(t *testing.T) {
	_, err := renderConfig(defaultTailwindConfig(), "/proj/\xff/src")

	if !errors.Is(err, ErrInvalidSrcPath) {
		t.Fatalf("expected ErrInvalidSrcPath, got %v", err)
	}
}
