package ui

import "stork/internal/interactive"

var (
	_ interactive.Painter   = Painter{}
	_ interactive.Clipboard = SystemClipboard{}
)

// Painter styles session output with a Styles set.
type Painter struct {
	styles Styles
}

// NewPainter returns a Painter using s.
func NewPainter(s Styles) Painter {
	return Painter{styles: s}
}

func (p Painter) Heading(s string) string  { return p.styles.Title.Render(s) }
func (p Painter) Label(s string) string    { return p.styles.Label.Render(s) }
func (p Painter) Detail(s string) string   { return p.styles.Muted.Render(s) }
func (p Painter) Query(s string) string    { return p.styles.Query.Render(s) }
func (p Painter) Prompt(s string) string   { return p.styles.Prompt.Render(s) }
func (p Painter) Success(s string) string  { return p.styles.Success.Render(s) }
func (p Painter) Warning(s string) string  { return p.styles.Warning.Render(s) }
func (p Painter) Error(s string) string    { return p.styles.Error.Render(s) }
func (p Painter) Divider(width int) string { return p.styles.RenderDivider(width) }
func (p Painter) Highlight(q string) string {
	return p.styles.Highlight(q)
}
