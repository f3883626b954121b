package interactive

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"stork/internal/catalog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClipboard struct {
	available bool
	err       error
	written   []string
}

func (f *fakeClipboard) Available() bool { return f.available }

func (f *fakeClipboard) Write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, text)
	return nil
}

func newTestSession(input string, opts ...Option) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, catalog.Builtin(), opts...), &out
}

// lines joins answers into newline-terminated input.
func lines(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

// skipAll answers every builder prompt with an empty line.
var skipAll = lines(make([]string, 15)...)

func TestBuildCustom_AllSkipped(t *testing.T) {
	s, _ := newTestSession(skipAll)
	got, err := s.BuildCustom()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBuildCustom_AllFacets(t *testing.T) {
	input := lines(
		"admin",                 // keywords
		"index of",              // exact phrase
		"pdf, xls",              // file types
		"https://example.com/x", // site
		"login panel", "y",      // title words, allintitle
		"admin", "",             // url words, per-word
		"",                      // text
		"",                      // anchor
		"y", "2459340-2459634",  // date range
		"n",                     // wildcard
		"y", "$200..$500",       // number range
		"example.org",           // link
		"",                      // related
		"",                      // cache
		"www -blog",             // exclusions
	)
	s, out := newTestSession(input)

	got, err := s.BuildCustom()
	require.NoError(t, err)
	assert.Equal(t,
		`admin "index of" filetype:pdf OR filetype:xls site:example.com allintitle:login panel inurl:admin `+
			`daterange:2459340-2459634 $200..$500 link:example.org -www -blog`,
		got)
	assert.Contains(t, out.String(), "Julian day format")
	assert.Contains(t, out.String(), "Use 'allintitle:' (exact phrase in the title)? (y/N) ")
}

func TestBuildCustom_KeywordOnce(t *testing.T) {
	s, _ := newTestSession(lines("confidential") + skipAll)
	got, err := s.BuildCustom()
	require.NoError(t, err)
	assert.Equal(t, "confidential", got)
}

func TestBuildCustom_FileTypesOnly(t *testing.T) {
	s, _ := newTestSession(lines("", "", "pdf doc") + lines(make([]string, 12)...))
	got, err := s.BuildCustom()
	require.NoError(t, err)
	assert.Equal(t, "filetype:pdf OR filetype:doc", got)
}

func TestBuildCustom_EOF(t *testing.T) {
	s, _ := newTestSession(lines("only", "two"))
	_, err := s.BuildCustom()
	assert.Error(t, err)
}

func TestBrowse(t *testing.T) {
	const openDirs = `intitle:"index of" -inurl:list -inurl:download`

	tests := []struct {
		name       string
		input      string
		want       string
		wantOutput string
	}{
		{"cancel category", lines("0"), "", ""},
		{"category out of range", lines("99"), "", ""},
		{"category not a number", lines("abc"), "", "Invalid selection."},
		{"empty category answer", lines(""), "", "Invalid selection."},
		{"cancel dork", lines("7", "0"), "", ""},
		{"dork out of range", lines("7", "5"), "", ""},
		{"dork not a number", lines("7", "x"), "", "Invalid selection."},
		{"select without customizing", lines("7", "1", ""), openDirs, "Selected: Basic Open Directories"},
		{
			"select and customize",
			lines("7", "1", "y", "https://example.com/a", "pdf", "-test"),
			openDirs + " site:example.com filetype:pdf -test",
			"=== Customize Dork ===",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestSession(tt.input)
			got, err := s.Browse()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.wantOutput != "" {
				assert.Contains(t, out.String(), tt.wantOutput)
			} else {
				assert.NotContains(t, out.String(), "Invalid selection.")
			}
		})
	}
}

func TestBrowse_ListsCategories(t *testing.T) {
	s, out := newTestSession(lines("0"))
	_, err := s.Browse()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1. 🔓 Vulnerability Discovery")
	assert.Regexp(t, `8\. .*OSINT & Intelligence`, out.String())
	assert.Contains(t, out.String(), "Select category (1-8) or 0 to cancel: ")
}

func TestDisplay(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		clip := &fakeClipboard{available: true}
		s, out := newTestSession("", WithClipboard(clip))
		require.NoError(t, s.Display(""))
		assert.Contains(t, out.String(), "[!] No dork generated.")
		assert.Empty(t, clip.written)
	})

	t.Run("copy by default", func(t *testing.T) {
		clip := &fakeClipboard{available: true}
		s, out := newTestSession(lines(""), WithClipboard(clip))
		require.NoError(t, s.Display("site:example.com"))
		assert.Equal(t, []string{"site:example.com"}, clip.written)
		assert.Contains(t, out.String(), "Copy this dork to clipboard? (Y/n) ")
		assert.Contains(t, out.String(), "[+] Dork copied to clipboard.")
		assert.Contains(t, out.String(), strings.Repeat("=", 60))
	})

	t.Run("declined", func(t *testing.T) {
		clip := &fakeClipboard{available: true}
		s, _ := newTestSession(lines("n"), WithClipboard(clip))
		require.NoError(t, s.Display("site:example.com"))
		assert.Empty(t, clip.written)
	})

	t.Run("write failure is not fatal", func(t *testing.T) {
		clip := &fakeClipboard{available: true, err: errors.New("no display")}
		s, out := newTestSession(lines("y"), WithClipboard(clip))
		require.NoError(t, s.Display("site:example.com"))
		assert.Contains(t, out.String(), "Could not copy to clipboard: no display")
	})

	t.Run("unavailable skips prompt", func(t *testing.T) {
		clip := &fakeClipboard{available: false}
		s, out := newTestSession("", WithClipboard(clip))
		require.NoError(t, s.Display("site:example.com"))
		assert.NotContains(t, out.String(), "Copy this dork")
	})
}

type upperPainter struct{ PlainPainter }

func (upperPainter) Highlight(s string) string { return strings.ToUpper(s) }

func TestDisplay_UsesPainter(t *testing.T) {
	s, out := newTestSession("", WithPainter(upperPainter{}))
	require.NoError(t, s.Display("site:example.com"))
	assert.Contains(t, out.String(), "SITE:EXAMPLE.COM")
}

func TestRun(t *testing.T) {
	t.Run("invalid then exit", func(t *testing.T) {
		s, out := newTestSession(lines("9", "3"), WithBanner("BANNER"))
		require.NoError(t, s.Run())
		assert.Equal(t, 1, strings.Count(out.String(), "BANNER"))
		assert.Contains(t, out.String(), "Invalid option, please try again.")
		assert.Contains(t, out.String(), "Goodbye! Happy dorking!")
	})

	t.Run("end of input exits cleanly", func(t *testing.T) {
		s, out := newTestSession("")
		require.NoError(t, s.Run())
		assert.Contains(t, out.String(), "Main Menu:")
	})

	t.Run("browse cancelled", func(t *testing.T) {
		s, out := newTestSession(lines("2", "0", "3"))
		require.NoError(t, s.Run())
		assert.Contains(t, out.String(), "Returning to main menu.")
	})

	t.Run("build with nothing", func(t *testing.T) {
		s, out := newTestSession(lines("1") + skipAll + lines("3"))
		require.NoError(t, s.Run())
		assert.Contains(t, out.String(), "[!] No dork generated.")
	})

	t.Run("build then input ends", func(t *testing.T) {
		s, out := newTestSession(lines("1", "admin"))
		require.NoError(t, s.Run())
		assert.NotContains(t, out.String(), "Generated Google Dork")
	})

	t.Run("browse and display", func(t *testing.T) {
		s, out := newTestSession(lines("2", "7", "2", "n", "3"))
		require.NoError(t, s.Run())
		assert.Contains(t, out.String(), "Generated Google Dork:")
		assert.Contains(t, out.String(), `intitle:"index of /" parent directory`)
	})
}
