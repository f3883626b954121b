package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stork/cmd/stork/ui"
	"stork/internal/catalog"
	"stork/internal/interactive"
)

var browseTUI bool

// browseCmd runs the template browser once
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a dork from the categorized template catalog",
	Long: `Lists the template categories, then the templates of the chosen
category. The selected template can be narrowed with a site, file types and
exclusions before it is displayed.

With --tui every template is shown in one filterable full-screen list.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browseTUI, "tui", false, "Open the full-screen template list")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	cat, err := loadCatalog(c)
	if err != nil {
		return err
	}
	s := newSessionWith(cmd, c, cat)
	if !browseTUI {
		return ignoreEOF(s.RunBrowse())
	}

	p := tea.NewProgram(
		ui.NewBrowserPageModel(cat, newStyles(c), newClipboard(c)),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("template browser failed: %w", err)
	}

	page, ok := final.(ui.BrowserPageModel)
	if !ok {
		return nil
	}
	d, ok := page.Choice()
	if !ok {
		return nil
	}
	return ignoreEOF(displayChoice(s, d))
}

// displayChoice offers the customize step for a template picked in the
// full-screen list, then displays the result.
func displayChoice(s *interactive.Session, d catalog.Dork) error {
	q, err := s.SelectTemplate(d)
	if err != nil {
		return err
	}
	return s.Display(q)
}
