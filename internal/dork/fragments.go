package dork

import (
	"strings"
)

// SplitList splits a raw answer into values. When the answer contains a
// comma it is split on commas and each value trimmed; otherwise it is split
// on whitespace. Empty values are dropped in both modes.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if !strings.Contains(raw, ",") {
		return strings.Fields(raw)
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Join joins fragments with a single space and collapses whitespace runs.
func Join(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Phrase quotes an exact phrase. Surrounding quotes typed by the user are
// not doubled.
func Phrase(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
	if s == "" {
		return ""
	}
	return `"` + s + `"`
}

// NormalizeSite strips an http(s) scheme and any path from a site answer.
func NormalizeSite(site string) string {
	site = strings.TrimSpace(site)
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(site, scheme) {
			site = strings.TrimPrefix(site, scheme)
			break
		}
	}
	host, _, _ := strings.Cut(site, "/")
	return host
}

// Site renders a site: fragment, or "" when the site is empty.
func Site(site string) string {
	host := NormalizeSite(site)
	if host == "" {
		return ""
	}
	return string(OpSite) + host
}

// FileTypes renders one filetype: fragment for a single type and a bare
// OR chain for several.
func FileTypes(types []string) string {
	switch len(types) {
	case 0:
		return ""
	case 1:
		return string(OpFileType) + types[0]
	}
	ors := make([]string, 0, len(types))
	for _, ft := range types {
		ors = append(ors, string(OpFileType)+ft)
	}
	return strings.Join(ors, " OR ")
}

// FileTypeGroup is FileTypes with several types wrapped in parentheses, so
// the chain does not bind to the query it is appended to.
func FileTypeGroup(types []string) string {
	q := FileTypes(types)
	if len(types) < 2 {
		return q
	}
	return "(" + q + ")"
}

// WordSet is a list of words bound to one of the in*/allin* operator pairs.
type WordSet struct {
	Words []string
	All   bool
}

// Words renders a word set. With All set the words are joined behind the
// all-words operator; otherwise each word gets its own single operator.
func Words(op WordOperator, ws WordSet) []string {
	if len(ws.Words) == 0 {
		return nil
	}
	if ws.All {
		return []string{string(op.All) + strings.Join(ws.Words, " ")}
	}
	out := make([]string, 0, len(ws.Words))
	for _, w := range ws.Words {
		out = append(out, string(op.Single)+w)
	}
	return out
}

// Prefixed renders op+value, or "" when value is blank.
func Prefixed(op Operator, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return string(op) + value
}

// Exclusions renders one -term fragment per term. A leading dash typed by
// the user is kept single.
func Exclusions(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimPrefix(strings.TrimSpace(term), "-")
		if term == "" {
			continue
		}
		out = append(out, "-"+term)
	}
	return out
}
