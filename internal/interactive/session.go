// Package interactive runs the prompt-driven flows: the custom dork
// builder, the template browser, the display step and the main menu loop.
//
// A Session owns no global state. Output styling and clipboard access are
// injected so the same flows run colorized in a terminal and plain in tests.
package interactive

import (
	"fmt"
	"io"
	"strings"

	"stork/internal/catalog"
	"stork/internal/console"
)

// Painter styles the text a session prints.
type Painter interface {
	Heading(s string) string
	Label(s string) string
	Detail(s string) string
	Query(s string) string
	Prompt(s string) string
	Success(s string) string
	Warning(s string) string
	Error(s string) string
	Divider(width int) string

	// Highlight styles a finished dork token by token.
	Highlight(dork string) string
}

// Clipboard is the optional system clipboard.
type Clipboard interface {
	Available() bool
	Write(text string) error
}

// PlainPainter prints everything unstyled.
type PlainPainter struct{}

func (PlainPainter) Heading(s string) string   { return s }
func (PlainPainter) Label(s string) string     { return s }
func (PlainPainter) Detail(s string) string    { return s }
func (PlainPainter) Query(s string) string     { return s }
func (PlainPainter) Prompt(s string) string    { return s }
func (PlainPainter) Success(s string) string   { return s }
func (PlainPainter) Warning(s string) string   { return s }
func (PlainPainter) Error(s string) string     { return s }
func (PlainPainter) Highlight(s string) string { return s }
func (PlainPainter) Divider(width int) string  { return strings.Repeat("=", width) }

const dividerWidth = 60

// Session wires a console, a catalog and the display dependencies.
type Session struct {
	con     *console.Console
	out     io.Writer
	catalog *catalog.Catalog
	paint   Painter
	clip    Clipboard
	banner  string
}

// Option configures a Session.
type Option func(*Session)

// WithPainter sets the output styling. The default is PlainPainter.
func WithPainter(p Painter) Option {
	return func(s *Session) {
		if p != nil {
			s.paint = p
		}
	}
}

// WithClipboard enables the copy prompt after display.
func WithClipboard(c Clipboard) Option {
	return func(s *Session) { s.clip = c }
}

// WithBanner sets the text printed once when the menu loop starts.
func WithBanner(banner string) Option {
	return func(s *Session) { s.banner = banner }
}

// New creates a session reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		out:     out,
		catalog: cat,
		paint:   PlainPainter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.con = console.New(in, out, console.WithPromptStyle(s.paint.Prompt))
	return s
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}
