package imagegen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awilder/go-lookout/pkg/imagegen"
)

func TestStyledPrompt(t *testing.T) {
	got := imagegen.StyledPrompt("kittens by a tree", "Watercolor")
	want := "kittens by a tree, in the style of Watercolor"
	if got != want {
		t.Errorf("StyledPrompt = %q, want %q", got, want)
	}
}

func TestStylesCatalog(t *testing.T) {
	if len(imagegen.Styles) == 0 {
		t.Fatal("expected a non-empty style catalog")
	}
	seen := make(map[string]bool, len(imagegen.Styles))
	for _, style := range imagegen.Styles {
		if style == "" {
			t.Error("empty style in catalog")
		}
		if seen[style] {
			t.Errorf("duplicate style %q", style)
		}
		seen[style] = true
	}
}

func TestWriteHTMLIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")

	images := []imagegen.Image{
		{
			LocalPath:     "Watercolor.png",
			Prompt:        "kittens by a tree",
			RevisedPrompt: "a watercolor painting of kittens <escaped>",
		},
	}

	if err := imagegen.WriteHTMLIndex(path, images); err != nil {
		t.Fatalf("WriteHTMLIndex failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	html := string(data)

	for _, want := range []string{
		"<th>Image</th>",
		"Watercolor.png",
		"kittens by a tree",
		"&lt;escaped&gt;",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index missing %q:\n%s", want, html)
		}
	}
}

func TestWriteHTMLIndexBadPath(t *testing.T) {
	err := imagegen.WriteHTMLIndex("/nonexistent/dir/index.html", nil)
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
