// Package dork composes search-engine query strings from facet values.
// Every function here is pure: the interactive layer collects answers and
// this package decides how each answer is rendered into the final query.
package dork

// Operator is a search operator prefix including its trailing colon.
type Operator string

const (
	OpFileType    Operator = "filetype:"
	OpExt         Operator = "ext:"
	OpSite        Operator = "site:"
	OpInTitle     Operator = "intitle:"
	OpAllInTitle  Operator = "allintitle:"
	OpInURL       Operator = "inurl:"
	OpAllInURL    Operator = "allinurl:"
	OpInText      Operator = "intext:"
	OpAllInText   Operator = "allintext:"
	OpInAnchor    Operator = "inanchor:"
	OpAllInAnchor Operator = "allinanchor:"
	OpLink        Operator = "link:"
	OpRelated     Operator = "related:"
	OpCache       Operator = "cache:"
	OpDateRange   Operator = "daterange:"
)

// Operators lists every operator the highlighter and the composer know about.
// Longer operators come before the shorter operators they contain.
var Operators = []Operator{
	OpAllInTitle, OpAllInURL, OpAllInText, OpAllInAnchor,
	OpInTitle, OpInURL, OpInText, OpInAnchor,
	OpFileType, OpExt, OpSite,
	OpLink, OpRelated, OpCache, OpDateRange,
}

// Name returns the operator without its colon.
func (o Operator) Name() string {
	return string(o[:len(o)-1])
}

// WordOperator pairs the per-word operator with its all-words variant.
type WordOperator struct {
	Single Operator
	All    Operator
}

var (
	TitleWords  = WordOperator{Single: OpInTitle, All: OpAllInTitle}
	URLWords    = WordOperator{Single: OpInURL, All: OpAllInURL}
	TextWords   = WordOperator{Single: OpInText, All: OpAllInText}
	AnchorWords = WordOperator{Single: OpInAnchor, All: OpAllInAnchor}
)
