// Package console provides the line-oriented prompt primitives the
// interactive flows are built on. It reads from any io.Reader and writes
// prompts to any io.Writer so flows can be driven from tests.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"stork/internal/dork"
)

// ErrInvalidChoice is returned by Choose when the answer is not a number.
var ErrInvalidChoice = errors.New("invalid selection")

// Console reads answers line by line.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	prompt func(string) string
}

// Option configures a Console.
type Option func(*Console)

// WithPromptStyle renders prompt text before it is written.
func WithPromptStyle(style func(string) string) Option {
	return func(c *Console) {
		if style != nil {
			c.prompt = style
		}
	}
}

// New creates a console over in and out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Line writes the prompt and returns the trimmed answer. It returns io.EOF
// only when input ended before any character of the answer was read.
func (c *Console) Line(prompt string) (string, error) {
	if _, err := fmt.Fprint(c.out, c.prompt(prompt)); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// List prompts for a comma or whitespace separated list.
func (c *Console) List(prompt string) ([]string, error) {
	raw, err := c.Line(prompt)
	if err != nil {
		return nil, err
	}
	return dork.SplitList(raw), nil
}

// Confirm asks a yes/no question. The hint shows the default in upper case
// and an empty answer selects it.
func (c *Console) Confirm(prompt string, def bool) (bool, error) {
	hint := " (y/N) "
	if def {
		hint = " (Y/n) "
	}
	ans, err := c.Line(prompt + hint)
	if err != nil {
		return false, err
	}
	ans = strings.ToLower(ans)
	if def {
		return ans != "n", nil
	}
	return ans == "y", nil
}

// Choose asks for a number. It returns ErrInvalidChoice when the answer
// cannot be parsed; range checks are left to the caller.
func (c *Console) Choose(prompt string) (int, error) {
	ans, err := c.Line(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(ans)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, ans)
	}
	return n, nil
}
