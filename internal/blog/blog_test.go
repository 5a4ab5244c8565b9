package blog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePost(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadPosts(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "02-harvest.md", "# Harvest season\n\nThe fields are ready.")
	writePost(t, dir, "01-sowing.md", "# Sowing notes\n\nSome `code` here.")
	writePost(t, dir, "ignore.txt", "not a post")

	posts, err := LoadPosts(dir)
	if err != nil {
		t.Fatalf("LoadPosts: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Slug != "01-sowing" || posts[1].Slug != "02-harvest" {
		t.Errorf("unexpected order: %q, %q", posts[0].Slug, posts[1].Slug)
	}
	if posts[0].Title != "Sowing notes" {
		t.Errorf("title = %q, want %q", posts[0].Title, "Sowing notes")
	}
	if !strings.Contains(string(posts[1].HTML), "<h1") {
		t.Errorf("expected rendered heading, got %q", posts[1].HTML)
	}
}

func TestLoadPostsMissingDir(t *testing.T) {
	posts, err := LoadPosts(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}

func TestExtractTitleFallback(t *testing.T) {
	if got := extractTitle("no heading here", "my-first-post"); got != "My first post" {
		t.Errorf("fallback title = %q, want %q", got, "My first post")
	}
}
