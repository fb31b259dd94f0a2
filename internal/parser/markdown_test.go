package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsBecomeParagraphs(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

## Section B

Section B content.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Leading h1 doubles as document title.
	if doc.Title != "Title" {
		t.Errorf("expected title %q, got %q", "Title", doc.Title)
	}

	want := []string{
		"Title",
		"Intro text.",
		"Section A",
		"Section A content.",
		"Section B",
		"Section B content.",
	}
	got := strings.Split(doc.Text, "\n\n")
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paragraph[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := `Just some plain text.

Another paragraph here.`

	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "plain" {
		t.Errorf("expected title from filename, got %q", doc.Title)
	}
	if !strings.Contains(doc.Text, "Just some plain text.") {
		t.Errorf("expected text to contain first paragraph, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "Another paragraph here.") {
		t.Errorf("expected text to contain second paragraph, got %q", doc.Text)
	}
}

func TestMarkdownParser_CodeBlocksKept(t *testing.T) {
	input := "# API Reference\n\nSome intro.\n\n```\nGET /api/users\nPOST /api/users\n```\n\nMore text after code.\n"

	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(doc.Text, "GET /api/users") {
		t.Errorf("expected code block content in text, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "More text after code.") {
		t.Errorf("expected post-code text, got %q", doc.Text)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "" {
		t.Errorf("expected empty text, got %q", doc.Text)
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"plain.md", "plain"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		doc, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Title)
		}
	}
}

func TestHTMLParser_BlocksAndTitle(t *testing.T) {
	input := `<html><head><title>Guide</title></head><body>
<nav>skip this</nav>
<h1>Welcome</h1>
<p>First paragraph.</p>
<script>var x = 1;</script>
<ul><li>Item one</li><li>Item two</li></ul>
</body></html>`

	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "guide.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Guide" {
		t.Errorf("expected title from <title>, got %q", doc.Title)
	}
	if strings.Contains(doc.Text, "skip this") {
		t.Error("nav content should be excluded")
	}
	if strings.Contains(doc.Text, "var x") {
		t.Error("script content should be excluded")
	}
	for _, want := range []string{"Welcome", "First paragraph.", "Item one", "Item two"} {
		if !strings.Contains(doc.Text, want) {
			t.Errorf("expected text to contain %q, got %q", want, doc.Text)
		}
	}
}

func TestCSVParser_HeaderValuePairs(t *testing.T) {
	input := "name,role\nAda,engineer\nGrace,admiral\n"

	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "people.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "people" {
		t.Errorf("expected title %q, got %q", "people", doc.Title)
	}
	for _, want := range []string{"Headers: name, role", "name: Ada", "role: engineer", "name: Grace"} {
		if !strings.Contains(doc.Text, want) {
			t.Errorf("expected text to contain %q, got %q", want, doc.Text)
		}
	}
}

func TestCSVParser_EmptyInput(t *testing.T) {
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "" {
		t.Errorf("expected empty text, got %q", doc.Text)
	}
}
