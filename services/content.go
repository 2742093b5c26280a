package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mozillazg/go-unidecode"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	// Allows the tags user generated content needs and strips scripts and event handlers.
	htmlPolicy = bluemonday.UGCPolicy()

	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
)

const maxSlugLength = 80

// RenderMarkdown converts markdown to sanitised HTML.
func RenderMarkdown(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return htmlPolicy.Sanitize(buf.String()), nil
}

// Slugify transliterates s to ASCII and joins its words with hyphens.
func Slugify(s string) string {
	slug := strings.ToLower(unidecode.Unidecode(s))
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}
