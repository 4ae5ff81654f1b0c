package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arhaan/disha/internal/ui/theme"
)

// ChecklistItem is one toggleable entry in a Checklist.
type ChecklistItem struct {
	Text    string
	Done    bool
	Heading bool // rendered as a section label, not selectable
}

// Checklist is a vertical list of toggleable items with a cursor.
// Toggling is reported through OnToggle with the item's index; the
// owner flips the Done flag and rebuilds the items.
type Checklist struct {
	Items    []ChecklistItem
	Cursor   int
	OnToggle func(index int) tea.Cmd
}

// NewChecklist creates a checklist with the cursor on the first
// selectable item.
func NewChecklist(items []ChecklistItem, onToggle func(int) tea.Cmd) Checklist {
	c := Checklist{Items: items, OnToggle: onToggle}
	c.Cursor = c.nextSelectable(-1, 1)
	return c
}

// nextSelectable returns the index of the next non-heading item from
// start in direction dir, or start's clamped value when none exists.
func (c Checklist) nextSelectable(start, dir int) int {
	for i := start + dir; i >= 0 && i < len(c.Items); i += dir {
		if !c.Items[i].Heading {
			return i
		}
	}
	if start < 0 {
		return 0
	}
	return start
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		c.Cursor = c.nextSelectable(c.Cursor, -1)
	case "down", "j":
		c.Cursor = c.nextSelectable(c.Cursor, 1)
	case "enter", " ":
		if c.Cursor >= 0 && c.Cursor < len(c.Items) && !c.Items[c.Cursor].Heading {
			if c.OnToggle != nil {
				return c, c.OnToggle(c.Cursor)
			}
		}
	}

	return c, nil
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		if item.Heading {
			s += lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render(item.Text) + "\n"
			continue
		}

		box := "[ ]"
		if item.Done {
			box = "[x]"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := prefix + box + " " + item.Text

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case item.Done:
			s += theme.Done.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
