package dork

// Facets holds every answer the builder can collect. Zero values mean the
// facet was skipped.
type Facets struct {
	Keywords    string
	ExactPhrase string
	FileTypes   []string
	Site        string
	Title       WordSet
	URL         WordSet
	Text        WordSet
	Anchor      WordSet
	DateRange   string
	Wildcard    string
	NumberRange string
	Link        string
	Related     string
	Cache       string
	Exclude     []string
}

// Compose renders facets into a query. Fragment order is fixed and does not
// depend on which facets are set.
func Compose(f Facets) string {
	parts := []string{
		f.Keywords,
		Phrase(f.ExactPhrase),
		FileTypes(f.FileTypes),
		Site(f.Site),
	}
	parts = append(parts, Words(TitleWords, f.Title)...)
	parts = append(parts, Words(URLWords, f.URL)...)
	parts = append(parts, Words(TextWords, f.Text)...)
	parts = append(parts, Words(AnchorWords, f.Anchor)...)
	parts = append(parts,
		Prefixed(OpDateRange, f.DateRange),
		f.Wildcard,
		f.NumberRange,
		Prefixed(OpLink, f.Link),
		Prefixed(OpRelated, f.Related),
		Prefixed(OpCache, f.Cache),
	)
	parts = append(parts, Exclusions(f.Exclude)...)
	return Join(parts...)
}

// IsEmpty reports whether no facet is set.
func (f Facets) IsEmpty() bool {
	return Compose(f) == ""
}

// Refinement narrows an existing query, typically a catalog template.
type Refinement struct {
	Site      string
	FileTypes []string
	Exclude   []string
}

// Refine appends the refinement's fragments to base. Several file types are
// grouped in parentheses; otherwise the rules match Compose.
func Refine(base string, r Refinement) string {
	parts := []string{base, Site(r.Site), FileTypeGroup(r.FileTypes)}
	parts = append(parts, Exclusions(r.Exclude)...)
	return Join(parts...)
}
