package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stork/internal/dork"
	"stork/internal/logging"
)

// errNoFacets is returned when compose is run without any facet flag.
var errNoFacets = errors.New("no search facets given (see stork compose --help)")

// Compose flags. List flags accept repeats, commas or spaces.
var (
	composeFacets    dork.Facets
	composeFileTypes []string
	composeExclude   []string
	composeTitle     string
	composeURL       string
	composeText      string
	composeAnchor    string
)

// composeCmd composes a dork from flags without prompting
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose a dork from flags, without prompts",
	Long: `Builds the same dork the interactive builder would, with every answer
given as a flag. The dork is printed on one line.`,
	Example: `  stork compose --site example.com --filetype pdf,xls --intitle "index of" --allintitle
  stork compose --keywords admin --inurl login --exclude www`,
	Args: cobra.NoArgs,
	RunE: runCompose,
}

func init() {
	f := composeCmd.Flags()
	f.StringVar(&composeFacets.Keywords, "keywords", "", "General keywords")
	f.StringVar(&composeFacets.ExactPhrase, "phrase", "", "Exact phrase (quoted in the dork)")
	f.StringSliceVar(&composeFileTypes, "filetype", nil, "File types, e.g. pdf,doc")
	f.StringVar(&composeFacets.Site, "site", "", "Site or domain; scheme and path are dropped")

	f.StringVar(&composeTitle, "intitle", "", "Words that must appear in the title")
	f.BoolVar(&composeFacets.Title.All, "allintitle", false, "Use allintitle: for the title words")
	f.StringVar(&composeURL, "inurl", "", "Words that must appear in the URL")
	f.BoolVar(&composeFacets.URL.All, "allinurl", false, "Use allinurl: for the URL words")
	f.StringVar(&composeText, "intext", "", "Words that must appear in the page text")
	f.BoolVar(&composeFacets.Text.All, "allintext", false, "Use allintext: for the text words")
	f.StringVar(&composeAnchor, "inanchor", "", "Words that must appear in anchor text")
	f.BoolVar(&composeFacets.Anchor.All, "allinanchor", false, "Use allinanchor: for the anchor words")

	f.StringVar(&composeFacets.DateRange, "daterange", "", "Julian day range START-END")
	f.StringVar(&composeFacets.Wildcard, "wildcard", "", "Term with a * placeholder")
	f.StringVar(&composeFacets.NumberRange, "numrange", "", "Number range, e.g. $200..$500")
	f.StringVar(&composeFacets.Link, "link", "", "Pages linking to this URL")
	f.StringVar(&composeFacets.Related, "related", "", "Sites related to this domain")
	f.StringVar(&composeFacets.Cache, "cache", "", "Cached version of this URL")
	f.StringSliceVar(&composeExclude, "exclude", nil, "Terms to exclude")
}

func runCompose(cmd *cobra.Command, args []string) error {
	facets := composeFacets
	facets.FileTypes = splitEach(composeFileTypes)
	facets.Exclude = splitEach(composeExclude)
	facets.Title.Words = dork.SplitList(composeTitle)
	facets.URL.Words = dork.SplitList(composeURL)
	facets.Text.Words = dork.SplitList(composeText)
	facets.Anchor.Words = dork.SplitList(composeAnchor)

	if facets.IsEmpty() {
		return errNoFacets
	}
	q := dork.Compose(facets)
	logging.BuilderDebug("composed %d chars from flags", len(q))

	fmt.Fprintln(cmd.OutOrStdout(), newPainter(currentConfig()).Highlight(q))
	return nil
}

// splitEach applies the builder's list splitting to every flag value.
func splitEach(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, dork.SplitList(v)...)
	}
	return out
}
