package interactive

import (
	"errors"
	"fmt"

	"stork/internal/catalog"
	"stork/internal/console"
	"stork/internal/dork"
	"stork/internal/logging"
)

// Browse lets the user pick a category and then a template. It returns ""
// when the user cancels, picks an index out of range, or types something
// that is not a number.
func (s *Session) Browse() (string, error) {
	s.println(s.paint.Heading("\n=== Advanced Dork Templates ===\n"))

	categories := s.catalog.Categories()
	for i, cat := range categories {
		s.println(s.paint.Label(fmt.Sprintf("%d. %s", i+1, cat.Name)))
		s.println(s.paint.Detail("   " + cat.Description))
		s.println()
	}

	idx, ok, err := s.choose(fmt.Sprintf("Select category (1-%d) or 0 to cancel: ", len(categories)), len(categories))
	if err != nil || !ok {
		return "", err
	}
	cat, ok := s.catalog.At(idx)
	if !ok {
		return "", nil
	}
	logging.Browser("category %s selected", cat.ID)

	s.println(s.paint.Heading(fmt.Sprintf("\n=== %s ===\n", cat.Name)))
	for i, d := range cat.Dorks {
		s.println(s.paint.Label(fmt.Sprintf("%d. %s", i+1, d.Name)))
		s.println(s.paint.Query("   " + d.Query))
		s.println(s.paint.Detail("   📝 " + d.Description))
		s.println()
	}

	idx, ok, err = s.choose(fmt.Sprintf("Select dork (1-%d) or 0 to cancel: ", len(cat.Dorks)), len(cat.Dorks))
	if err != nil || !ok {
		return "", err
	}
	return s.SelectTemplate(cat.Dorks[idx])
}

// SelectTemplate shows the chosen template and offers to customize it.
func (s *Session) SelectTemplate(d catalog.Dork) (string, error) {
	logging.Browser("template %q selected", d.Name)
	s.println(s.paint.Success("\nSelected: " + d.Name))
	s.println(s.paint.Query("Dork: " + d.Query))

	customize, err := s.con.Confirm("\nCustomize this dork with additional parameters?", false)
	if err != nil {
		return "", err
	}
	if !customize {
		return d.Query, nil
	}
	return s.Customize(d.Query)
}

// choose reads a 1-based menu number and converts it to a zero-based index.
// ok is false for 0, out of range, or a non-numeric answer; only the last
// case prints a message.
func (s *Session) choose(prompt string, n int) (idx int, ok bool, err error) {
	choice, err := s.con.Choose(prompt)
	if errors.Is(err, console.ErrInvalidChoice) {
		s.println(s.paint.Error("Invalid selection."))
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if choice < 1 || choice > n {
		return 0, false, nil
	}
	return choice - 1, true, nil
}

// Customize narrows a base query with site, file type and exclusion
// fragments.
func (s *Session) Customize(base string) (string, error) {
	s.println(s.paint.Heading("\n=== Customize Dork ===\n"))
	s.println(s.paint.Query("Base dork: " + base))

	var r dork.Refinement
	var err error
	if r.Site, err = s.con.Line("Restrict to specific site (optional): "); err != nil {
		return "", err
	}
	if r.FileTypes, err = s.con.List("Add file type restrictions (optional): "); err != nil {
		return "", err
	}
	if r.Exclude, err = s.con.List("Terms to exclude (optional): "); err != nil {
		return "", err
	}
	return dork.Refine(base, r), nil
}
