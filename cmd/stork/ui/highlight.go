package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stork/internal/dork"
)

// TokenKind classifies a highlighted span of a dork.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenOperator
	TokenQuoted
	TokenGroup
	TokenBoolean
	TokenWildcard
)

// Token is one span of a dork. Concatenating every Token.Text gives back
// the input unchanged.
type Token struct {
	Kind TokenKind
	Text string
}

var tokenPattern = regexp.MustCompile(operatorAlternation() +
	`|"[^"]*"` +
	`|[()]` +
	`|\b(?:AND|OR)\b` +
	`|\|` +
	`|\*`)

// operatorAlternation builds `\b(?:allintitle:|...|intitle:|...)` from the
// operator list. Longer names come first so allin* wins over in*.
func operatorAlternation() string {
	names := make([]string, 0, len(dork.Operators))
	for _, op := range dork.Operators {
		names = append(names, regexp.QuoteMeta(string(op)))
	}
	return `\b(?:` + strings.Join(names, "|") + `)`
}

// Tokenize splits a dork into classified spans in a single pass.
func Tokenize(q string) []Token {
	var tokens []Token
	last := 0
	for _, loc := range tokenPattern.FindAllStringIndex(q, -1) {
		if loc[0] > last {
			tokens = append(tokens, Token{Kind: TokenText, Text: q[last:loc[0]]})
		}
		text := q[loc[0]:loc[1]]
		tokens = append(tokens, Token{Kind: classify(text), Text: text})
		last = loc[1]
	}
	if last < len(q) {
		tokens = append(tokens, Token{Kind: TokenText, Text: q[last:]})
	}
	return tokens
}

func classify(text string) TokenKind {
	switch {
	case strings.HasSuffix(text, ":"):
		return TokenOperator
	case strings.HasPrefix(text, `"`):
		return TokenQuoted
	case text == "(" || text == ")":
		return TokenGroup
	case text == "*":
		return TokenWildcard
	default:
		return TokenBoolean
	}
}

// Highlight renders q with each token kind in its own style.
func (s Styles) Highlight(q string) string {
	var b strings.Builder
	for _, tok := range Tokenize(q) {
		b.WriteString(s.tokenStyle(tok.Kind).Render(tok.Text))
	}
	return b.String()
}

func (s Styles) tokenStyle(k TokenKind) lipgloss.Style {
	switch k {
	case TokenOperator:
		return s.Operator
	case TokenQuoted:
		return s.Quoted
	case TokenGroup:
		return s.Group
	case TokenBoolean:
		return s.Boolean
	case TokenWildcard:
		return s.Wildcard
	default:
		return s.Body
	}
}
