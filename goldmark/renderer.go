// Package goldmark renders the markdown overview as HTML.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/srcdoc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Ensure Renderer implements srcdoc.Renderer at compile time.
var _ srcdoc.Renderer = (*Renderer)(nil)

const (
	htmlHeader = "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Project Overview</title>\n</head>\n<body>\n"
	htmlFooter = "</body>\n</html>\n"
)

// Renderer converts markdown into a standalone HTML page.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer with GitHub Flavored Markdown enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render returns markdown as a complete HTML document. Raw HTML in the
// markdown is not passed through.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(htmlHeader)
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	buf.WriteString(htmlFooter)
	return buf.String(), nil
}
