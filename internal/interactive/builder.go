package interactive

import (
	"stork/internal/dork"
	"stork/internal/logging"
)

// BuildCustom walks the user through every facet and returns the composed
// dork. An empty result means every prompt was skipped.
func (s *Session) BuildCustom() (string, error) {
	s.println(s.paint.Heading("\n=== Build Custom Dork ===\n"))

	f, err := s.CollectFacets()
	if err != nil {
		return "", err
	}
	q := dork.Compose(f)
	logging.BuilderDebug("composed %d chars", len(q))
	return q, nil
}

// CollectFacets asks one prompt per facet, in the fixed composition order.
func (s *Session) CollectFacets() (dork.Facets, error) {
	var f dork.Facets
	var err error

	if f.Keywords, err = s.con.Line("General keywords (space-separated): "); err != nil {
		return f, err
	}
	if f.ExactPhrase, err = s.con.Line("Exact phrase (will be quoted): "); err != nil {
		return f, err
	}
	if f.FileTypes, err = s.con.List("File type(s) (comma/space-separated, e.g., pdf doc xls): "); err != nil {
		return f, err
	}
	if f.Site, err = s.con.Line("Site/domain (e.g., example.com): "); err != nil {
		return f, err
	}

	wordFacets := []struct {
		dst   *dork.WordSet
		where string
		op    dork.WordOperator
	}{
		{&f.Title, "the title", dork.TitleWords},
		{&f.URL, "the URL", dork.URLWords},
		{&f.Text, "page text", dork.TextWords},
		{&f.Anchor, "anchor text", dork.AnchorWords},
	}
	for _, wf := range wordFacets {
		if *wf.dst, err = s.askWords(wf.where, wf.op); err != nil {
			return f, err
		}
	}

	if f.DateRange, err = s.askGated(
		"Add date range filter? (requires Julian dates)",
		"Date range uses Julian day format (e.g., 2459340-2459634)",
		"Enter date range (START-END): ",
	); err != nil {
		return f, err
	}
	if f.Wildcard, err = s.askGated(
		"Add wildcard search (*) to your query?",
		"",
		"Enter term with * placeholder (e.g., best * apps): ",
	); err != nil {
		return f, err
	}
	if f.NumberRange, err = s.askGated(
		"Add number range (e.g., $200..$500)?",
		"",
		"Enter range (e.g., 200..500 or $200..$500): ",
	); err != nil {
		return f, err
	}

	if f.Link, err = s.con.Line("Pages linking to this URL (link:example.com): "); err != nil {
		return f, err
	}
	if f.Related, err = s.con.Line("Find sites related to (related:example.com): "); err != nil {
		return f, err
	}
	if f.Cache, err = s.con.Line("Cached version of URL (cache:example.com): "); err != nil {
		return f, err
	}
	if f.Exclude, err = s.con.List("Terms to exclude (comma/space-separated, prefixed with '-'): "); err != nil {
		return f, err
	}
	return f, nil
}

// askWords collects words for one in*/allin* pair. The all-words question
// is only asked when at least one word was given.
func (s *Session) askWords(where string, op dork.WordOperator) (dork.WordSet, error) {
	words, err := s.con.List("Words that must appear in " + where + " (space-separated): ")
	if err != nil || len(words) == 0 {
		return dork.WordSet{}, err
	}
	all, err := s.con.Confirm("Use '"+string(op.All)+"' (exact phrase in "+where+")?", false)
	if err != nil {
		return dork.WordSet{}, err
	}
	return dork.WordSet{Words: words, All: all}, nil
}

// askGated asks a yes/no question and, on yes, prints an optional hint and
// reads the value.
func (s *Session) askGated(question, hint, prompt string) (string, error) {
	ok, err := s.con.Confirm(question, false)
	if err != nil || !ok {
		return "", err
	}
	if hint != "" {
		s.println(s.paint.Warning("\n" + hint))
	}
	return s.con.Line(prompt)
}
