package main

import "strings"

// statusMarker returns the rendered status indicator for it.
func (m Model) statusMarker(it item) string {
	switch it.status {
	case statusPending:
		return m.styles.Pending.Render("▶ playing")
	case statusDone:
		return m.styles.Done.Render("✓ done")
	case statusCanceled:
		return m.styles.Canceled.Render("- canceled")
	case statusFailed:
		return m.styles.Failed.Render("✗ failed")
	default:
		return ""
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("gsound board"))
	b.WriteString("\n\n")

	for i, it := range m.items {
		cursor := "  "
		label := m.styles.Item.Render(it.label)
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
			label = m.styles.Selected.Render(it.label)
		}
		b.WriteString(cursor)
		b.WriteString(label)
		if marker := m.statusMarker(it); marker != "" {
			b.WriteString("  ")
			b.WriteString(marker)
		}
		if it.errMsg != "" {
			b.WriteString("  ")
			b.WriteString(m.styles.ErrText.Render(it.errMsg))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
