package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stork/internal/catalog"
	"stork/internal/interactive"
)

// BrowserPageModel is a filterable full-screen list of every template in a
// catalog. Enter picks a template and quits; c or y copies it in place when
// a clipboard is available.
type BrowserPageModel struct {
	list   list.Model
	styles Styles
	clip   interactive.Clipboard
	choice *catalog.Dork
}

// templateItem adapts a catalog.Dork to list.Item.
type templateItem struct {
	category string
	dork     catalog.Dork
}

func (i templateItem) Title() string       { return i.dork.Name }
func (i templateItem) Description() string { return fmt.Sprintf("[%s] %s", i.category, i.dork.Query) }
func (i templateItem) FilterValue() string {
	return i.dork.Name + " " + i.category + " " + i.dork.Query + " " + i.dork.Description
}

// NewBrowserPageModel lists every template of cat, grouped by category order.
// A nil or unavailable clip disables the copy keys.
func NewBrowserPageModel(cat *catalog.Catalog, styles Styles, clip interactive.Clipboard) BrowserPageModel {
	items := make([]list.Item, 0, cat.Count())
	for _, c := range cat.Categories() {
		for _, d := range c.Dorks {
			items = append(items, templateItem{category: c.ID, dork: d})
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 24)
	l.Title = fmt.Sprintf("Dork Templates (%d)", len(items))
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(styles.Theme.Primary)

	if clip != nil && !clip.Available() {
		clip = nil
	}
	return BrowserPageModel{list: l, styles: styles, clip: clip}
}

// Init initializes the model.
func (m BrowserPageModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BrowserPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(templateItem); ok {
				d := item.dork
				m.choice = &d
			}
			return m, tea.Quit
		case "c", "y":
			if m.clip != nil {
				return m, m.copySelected()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *BrowserPageModel) copySelected() tea.Cmd {
	item, ok := m.list.SelectedItem().(templateItem)
	if !ok {
		return nil
	}
	if err := m.clip.Write(item.dork.Query); err != nil {
		return m.list.NewStatusMessage(m.styles.Error.Render("Failed to copy dork"))
	}
	return m.list.NewStatusMessage(m.styles.Success.Render(fmt.Sprintf("Copied %q to clipboard", item.dork.Name)))
}

// View renders the page.
func (m BrowserPageModel) View() string {
	keys := []string{"enter: select"}
	if m.clip != nil {
		keys = append(keys, "c/y: copy")
	}
	keys = append(keys, "/: filter", "q: quit")
	help := m.styles.Muted.Render(" • " + strings.Join(keys, " • "))
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), help)
}

// Choice returns the template picked with enter, if any.
func (m BrowserPageModel) Choice() (catalog.Dork, bool) {
	if m.choice == nil {
		return catalog.Dork{}, false
	}
	return *m.choice, true
}
