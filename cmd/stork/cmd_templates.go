package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"stork/internal/catalog"
	"stork/internal/config"
	"stork/internal/interactive"
)

var (
	templatesFormat   string
	templatesCategory string
)

// templatesCmd prints the template catalog
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Print the template catalog",
	Long: `Prints every template, or the templates of one category, as text,
markdown, JSON or YAML. The YAML output can be edited and loaded back with
--catalog.`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().StringVarP(&templatesFormat, "format", "f", "text", "Output format: text, markdown, json, yaml")
	templatesCmd.Flags().StringVar(&templatesCategory, "category", "", "Only print this category id (e.g. creds)")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	cat, err := loadCatalog(c)
	if err != nil {
		return err
	}

	categories := cat.Categories()
	if templatesCategory != "" {
		one, err := cat.Category(templatesCategory)
		if err != nil {
			return err
		}
		categories = []catalog.Category{one}
	}

	out := cmd.OutOrStdout()
	switch templatesFormat {
	case "text":
		writeTemplatesText(out, newPainter(c), categories)
		return nil
	case "markdown", "md":
		return writeTemplatesMarkdown(out, c, categories)
	case "json":
		data, err := json.MarshalIndent(struct {
			Categories []catalog.Category `json:"categories"`
		}{categories}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		data, err := catalog.Marshal(categories)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (valid: text, markdown, json, yaml)", templatesFormat)
	}
}

func writeTemplatesText(w io.Writer, p interactive.Painter, categories []catalog.Category) {
	for _, cat := range categories {
		fmt.Fprintln(w, p.Heading(fmt.Sprintf("%s [%s]", cat.Name, cat.ID)))
		fmt.Fprintln(w, p.Detail(cat.Description))
		for _, d := range cat.Dorks {
			fmt.Fprintln(w, "  "+p.Label(d.Name))
			fmt.Fprintln(w, "    "+p.Highlight(d.Query))
			fmt.Fprintln(w, "    "+p.Detail(d.Description))
		}
		fmt.Fprintln(w)
	}
}

// templatesMarkdown renders categories as a markdown document. Lists are
// used instead of tables since queries may contain pipes.
func templatesMarkdown(categories []catalog.Category) string {
	var b strings.Builder
	b.WriteString("# Dork Templates\n")
	for _, cat := range categories {
		fmt.Fprintf(&b, "\n## %s\n\n_%s_ (`%s`)\n\n", cat.Name, cat.Description, cat.ID)
		for _, d := range cat.Dorks {
			fmt.Fprintf(&b, "- **%s**: %s\n\n  ```\n  %s\n  ```\n", d.Name, d.Description, d.Query)
		}
	}
	return b.String()
}

func writeTemplatesMarkdown(w io.Writer, c *config.Config, categories []catalog.Category) error {
	md := templatesMarkdown(categories)
	if !c.ColorEnabled() {
		_, err := io.WriteString(w, md)
		return err
	}

	r, err := newMarkdownRenderer(c.Theme)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, rendered)
	return err
}

func newMarkdownRenderer(theme string) (*glamour.TermRenderer, error) {
	style := glamour.WithAutoStyle()
	switch theme {
	case config.ThemeLight:
		style = glamour.WithStylePath("light")
	case config.ThemeDark:
		style = glamour.WithStylePath("dark")
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
}
