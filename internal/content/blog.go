package content

import (
	"bytes"
	"embed"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"northern-forge-site/internal/domain"
)

//go:embed posts/*.md
var postFiles embed.FS

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Typographer))
	// Post bodies are trusted files, but the output is still filtered so a bad
	// edit cannot inject script into the page.
	postPolicy = bluemonday.UGCPolicy()
)

type postMeta struct {
	slug      string
	title     string
	summary   string
	gradient  string
	published time.Time
}

var posts = []postMeta{
	{
		slug:      "future-of-ai-in-small-business",
		title:     "The Future of AI in Small Business",
		summary:   "Discover how AI is revolutionizing small businesses and what it means for you.",
		gradient:  "gradient-teal",
		published: time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC),
	},
	{
		slug:      "ai-powered-automation",
		title:     "AI-Powered Automation for Enhanced Productivity",
		summary:   "Learn how to leverage AI-powered automation to streamline your business processes.",
		gradient:  "gradient-teal-gold",
		published: time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
	},
	{
		slug:      "navigating-the-ai-landscape",
		title:     "Navigating the AI Landscape: A Guide for SMEs",
		summary:   "A comprehensive guide to help SMEs navigate the complex world of AI.",
		gradient:  "gradient-gold",
		published: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
	},
}

// Posts returns the blog teasers in display order
func Posts() []domain.BlogPost {
	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.teaser())
	}
	return out
}

// Post loads a full post by slug
func Post(slug string) (*domain.BlogPost, error) {
	for _, p := range posts {
		if p.slug != slug {
			continue
		}
		body, err := postFiles.ReadFile("posts/" + slug + ".md")
		if err != nil {
			return nil, fmt.Errorf("read post %s: %w", slug, err)
		}
		post := p.teaser()
		post.Markdown = string(body)
		return &post, nil
	}
	return nil, domain.ErrNotFound
}

// RenderPost converts a post body to sanitized HTML
func RenderPost(post *domain.BlogPost) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(post.Markdown), &buf); err != nil {
		return "", fmt.Errorf("render post %s: %w", post.Slug, err)
	}
	return postPolicy.Sanitize(buf.String()), nil
}

func (p postMeta) teaser() domain.BlogPost {
	return domain.BlogPost{
		Slug:        p.slug,
		Title:       p.title,
		Summary:     p.summary,
		Gradient:    p.gradient,
		PublishedAt: p.published,
	}
}
