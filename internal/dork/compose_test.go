package dork

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"whitespace", "pdf  doc\txls", []string{"pdf", "doc", "xls"}},
		{"commas", "pdf, doc ,xls", []string{"pdf", "doc", "xls"}},
		{"commas keep inner spaces", "admin panel, login page", []string{"admin panel", "login page"}},
		{"commas drop empties", ",pdf,, ,doc,", []string{"pdf", "doc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitList(tt.raw)); diff != "" {
				t.Errorf("SplitList(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestNormalizeSite(t *testing.T) {
	assert.Equal(t, "example.com", NormalizeSite("https://example.com/path/x"))
	assert.Equal(t, "example.com", NormalizeSite("http://example.com"))
	assert.Equal(t, "sub.example.com", NormalizeSite("  sub.example.com/  "))
	assert.Equal(t, "", NormalizeSite("https://"))
	assert.Equal(t, "", Site("   "))
	assert.Equal(t, "site:example.com", Site("https://example.com/a"))
}

func TestFileTypes(t *testing.T) {
	assert.Equal(t, "", FileTypes(nil))
	assert.Equal(t, "filetype:pdf", FileTypes([]string{"pdf"}))
	assert.Equal(t, "filetype:pdf OR filetype:doc OR filetype:xls", FileTypes([]string{"pdf", "doc", "xls"}))
}

func TestFileTypeGroup(t *testing.T) {
	assert.Equal(t, "", FileTypeGroup(nil))
	assert.Equal(t, "filetype:pdf", FileTypeGroup([]string{"pdf"}))
	assert.Equal(t, "(filetype:pdf OR filetype:doc)", FileTypeGroup([]string{"pdf", "doc"}))
}

func TestWords(t *testing.T) {
	ws := WordSet{Words: []string{"admin", "login"}}
	assert.Equal(t, []string{"intitle:admin", "intitle:login"}, Words(TitleWords, ws))

	ws.All = true
	assert.Equal(t, []string{"allintitle:admin login"}, Words(TitleWords, ws))
	assert.Nil(t, Words(URLWords, WordSet{All: true}))
}

func TestPhrase(t *testing.T) {
	assert.Equal(t, `"index of"`, Phrase("index of"))
	assert.Equal(t, `"index of"`, Phrase(`"index of"`))
	assert.Equal(t, "", Phrase(`"`))
	assert.Equal(t, "", Phrase(""))
}

func TestExclusions(t *testing.T) {
	got := Exclusions([]string{"www", "-blog", " ", "--"})
	assert.Equal(t, []string{"-www", "-blog", "--"}, got)
}

func TestCompose_KeywordAppearsOnce(t *testing.T) {
	got := Compose(Facets{Keywords: "confidential"})
	assert.Equal(t, "confidential", got)
	assert.Equal(t, 1, strings.Count(got, "confidential"))
}

func TestCompose_Order(t *testing.T) {
	f := Facets{
		Keywords:    "report",
		ExactPhrase: "internal use only",
		FileTypes:   []string{"pdf", "docx"},
		Site:        "https://example.com/docs",
		Title:       WordSet{Words: []string{"budget"}},
		URL:         WordSet{Words: []string{"admin", "panel"}, All: true},
		Text:        WordSet{Words: []string{"password"}},
		Anchor:      WordSet{Words: []string{"download"}},
		DateRange:   "2459340-2459634",
		Wildcard:    "best * apps",
		NumberRange: "$200..$500",
		Link:        "example.org",
		Related:     "example.net",
		Cache:       "example.com/page",
		Exclude:     []string{"www", "-blog"},
	}

	want := `report "internal use only" filetype:pdf OR filetype:docx site:example.com ` +
		`intitle:budget allinurl:admin panel intext:password inanchor:download ` +
		`daterange:2459340-2459634 best * apps $200..$500 link:example.org ` +
		`related:example.net cache:example.com/page -www -blog`
	assert.Equal(t, want, Compose(f))
}

func TestCompose_FileTypesOnly(t *testing.T) {
	assert.Equal(t, "filetype:pdf OR filetype:doc", Compose(Facets{FileTypes: SplitList("pdf doc")}))
}

func TestCompose_NormalizesWhitespace(t *testing.T) {
	got := Compose(Facets{Keywords: "  admin    login  ", Wildcard: "best  *\tapps"})
	assert.Equal(t, "admin login best * apps", got)
}

func TestCompose_Empty(t *testing.T) {
	assert.True(t, Facets{}.IsEmpty())
	assert.False(t, Facets{Cache: "x"}.IsEmpty())
}

func TestRefine(t *testing.T) {
	base := `intitle:"index of" backup`
	got := Refine(base, Refinement{
		Site:      "http://example.com/",
		FileTypes: []string{"sql", "zip"},
		Exclude:   []string{"demo"},
	})
	assert.Equal(t, `intitle:"index of" backup site:example.com (filetype:sql OR filetype:zip) -demo`, got)
	assert.Equal(t, base, Refine(base, Refinement{}))
}

func TestOperatorName(t *testing.T) {
	assert.Equal(t, "allinanchor", OpAllInAnchor.Name())
	for _, op := range Operators {
		assert.True(t, strings.HasSuffix(string(op), ":"), op)
	}
}
