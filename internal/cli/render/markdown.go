package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderers are expensive to build, so they are cached per style and width
var rendererCache sync.Map // map[string]*glamour.TermRenderer

func getRenderer(dark bool, width int) (*glamour.TermRenderer, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	key := fmt.Sprintf("%s/%d", style, width)
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache.Store(key, renderer)
	return renderer, nil
}

// Markdown renders md for the terminal, falling back to the raw text
func Markdown(md string, dark bool, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := getRenderer(dark, width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// CodeBlock renders a snippet as a fenced block so glamour highlights it
func CodeBlock(code, language string, dark bool, width int) string {
	if strings.TrimSpace(code) == "" {
		return ""
	}
	return Markdown("```"+language+"\n"+strings.TrimRight(code, "\n")+"\n```", dark, width)
}
