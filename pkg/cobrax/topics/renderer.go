package topics

import "strings"

// Renderer turns a topic file into terminal text. ext is the file
// extension including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// RenderFunc adapts a function to Renderer
type RenderFunc func(content string, ext string) string

func (f RenderFunc) Render(content string, ext string) string {
	return f(content, ext)
}

// PlainRenderer prints topics untouched apart from trailing blank lines
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, _ string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
