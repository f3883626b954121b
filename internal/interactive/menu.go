package interactive

import (
	"errors"
	"io"

	"stork/internal/logging"
)

// Display prints the dork with highlighting and offers to copy it.
func (s *Session) Display(d string) error {
	if d == "" {
		s.println(s.paint.Error("\n[!] No dork generated."))
		return nil
	}

	s.println(s.paint.Query("\n" + s.paint.Divider(dividerWidth)))
	s.println(s.paint.Heading("Generated Google Dork:\n"))
	s.println(s.paint.Highlight(d))
	s.println(s.paint.Query("\n" + s.paint.Divider(dividerWidth)))

	if s.clip == nil || !s.clip.Available() {
		return nil
	}
	ok, err := s.con.Confirm("Copy this dork to clipboard?", true)
	if err != nil || !ok {
		return err
	}
	if err := s.clip.Write(d); err != nil {
		logging.DisplayWarn("clipboard write failed: %v", err)
		s.println(s.paint.Warning("[!] Could not copy to clipboard: " + err.Error()))
		return nil
	}
	s.println(s.paint.Success("[+] Dork copied to clipboard."))
	return nil
}

// Run prints the banner and loops over the main menu until the user exits
// or input ends.
func (s *Session) Run() error {
	if s.banner != "" {
		s.println(s.banner)
	}

	for {
		s.println(s.paint.Heading("\nMain Menu:"))
		s.println("1. Build custom dork")
		s.println("2. Browse advanced templates (categorized)")
		s.println("3. Exit")

		choice, err := s.con.Line("\nSelect option: ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = s.RunBuild()
		case "2":
			err = s.RunBrowse()
		case "3":
			s.println(s.paint.Success("Goodbye! Happy dorking! 🔍"))
			return nil
		default:
			s.println(s.paint.Error("Invalid option, please try again."))
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// RunBuild runs the builder once and displays the result.
func (s *Session) RunBuild() error {
	d, err := s.BuildCustom()
	if err != nil {
		return err
	}
	return s.Display(d)
}

// RunBrowse runs the browser once and displays the selection, if any.
func (s *Session) RunBrowse() error {
	d, err := s.Browse()
	if err != nil {
		return err
	}
	if d == "" {
		s.println(s.paint.Warning("Returning to main menu."))
		return nil
	}
	return s.Display(d)
}

// endOfInput turns io.EOF into a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
