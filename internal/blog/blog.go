// Package blog renders the markdown posts shown on the page the gallery
// is embedded in.
package blog

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Post is one rendered blog post.
type Post struct {
	Slug  string
	Title string
	HTML  template.HTML
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// LoadPosts renders every .md file directly under dir, ordered by
// filename. A missing directory yields no posts, not an error.
func LoadPosts(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading posts dir %s: %w", dir, err)
	}

	md := newMarkdown()

	var posts []Post
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading post %s: %w", e.Name(), err)
		}

		var buf bytes.Buffer
		if err := md.Convert(content, &buf); err != nil {
			return nil, fmt.Errorf("rendering post %s: %w", e.Name(), err)
		}

		slug := strings.TrimSuffix(e.Name(), ".md")
		posts = append(posts, Post{
			Slug:  slug,
			Title: extractTitle(string(content), slug),
			HTML:  template.HTML(buf.String()),
		})
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].Slug < posts[j].Slug })
	return posts, nil
}

// extractTitle returns the first H1 heading, or a title derived from the
// slug when the post has none.
func extractTitle(content, slug string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	title := strings.ReplaceAll(slug, "-", " ")
	title = strings.ReplaceAll(title, "_", " ")
	if title == "" {
		return slug
	}
	return strings.ToUpper(title[:1]) + title[1:]
}
