package topics

import (
	"github.com/charmbracelet/glamour"
)

// Glamour style names.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through unchanged.
type GlamourRenderer struct {
	// Style is a glamour style name or a path to a style file.
	Style string
	// Width wraps output; 0 keeps glamour's default.
	Width int
}

// NewGlamourRenderer picks a style from the terminal state: notty without
// color, otherwise dark or light.
func NewGlamourRenderer(color, dark bool, width int) *GlamourRenderer {
	style := StyleNoTTY
	switch {
	case color && dark:
		style = StyleDark
	case color:
		style = StyleLight
	}
	return &GlamourRenderer{Style: style, Width: width}
}

func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	if r.Style == "" {
		options = []glamour.TermRendererOption{glamour.WithStandardStyle(StyleNoTTY)}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
