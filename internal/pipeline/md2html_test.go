package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name    string
		title   string
		content string
		want    []string
	}{
		{
			name:    "document shell and title",
			title:   "My <Projects>",
			content: "# Hello",
			want:    []string{"<!DOCTYPE html>", "<title>My &lt;Projects&gt;</title>", `<h1 id="hello">Hello</h1>`},
		},
		{
			name:    "default title",
			content: "text",
			want:    []string{"<title>" + DefaultTitle + "</title>"},
		},
		{
			name:    "project card raw HTML is kept",
			content: `<a href="https://tool.dev"><img src="https://tool.dev/og.png" height="200"/></a>`,
			want:    []string{`<img src="https://tool.dev/og.png" height="200"/>`},
		},
		{
			name:    "separator and links",
			content: "a\n\n---\n\n**Website:** [https://x.dev](https://x.dev)",
			want:    []string{"<hr />", `<a href="https://x.dev">https://x.dev</a>`},
		},
		{
			name:    "marker comments pass through",
			content: "<!-- INSERT-PROJECTS:START -->\n<!-- INSERT-PROJECTS:END -->",
			want:    []string{"<!-- INSERT-PROJECTS:START -->"},
		},
		{
			name:    "fenced code is highlighted inline",
			content: "```go\nfunc main() {}\n```",
			want:    []string{"<pre", "style="},
		},
		{
			name:    "GFM table",
			content: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:    []string{"<table>", "<td>1</td>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.title, tt.content)
			if err != nil {
				t.Fatalf("ToHTML() error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkConverter().ToHTML(ctx, "", "# x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
