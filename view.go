package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// Top-level view
// ---------------------------------------------------------------------------

func (m model) View() string {
	if !m.ready {
		return statusStyle.Render(m.status)
	}

	title := " Bookmarks "
	if m.tagFilter != "" {
		title = fmt.Sprintf(" Bookmarks [tag: %s] ", m.tagFilter)
	}

	list := listBoxStyle.Width(m.sectionWidth()).Render(m.renderList())
	main := titleStyle.Render(title) + "\n" + list + "\n" + m.renderSearchBar()

	statusLine := m.renderBar(statusBarStyle, m.status)
	footer := m.renderFooter(m.keys.helpFor(m.mode))
	base := m.placeWithFooter(main, statusLine, footer)

	switch m.mode {
	case modeAdding:
		return m.composeModal(base, m.renderFormModal("Add Bookmark"))
	case modeEditing:
		return m.composeModal(base, m.renderFormModal("Edit Bookmark"))
	case modeConfirmDelete:
		return m.composeModal(base, m.renderDeleteModal())
	case modeChoosingTag:
		return m.composeModal(base, m.renderTagModal())
	}
	return base
}

// ---------------------------------------------------------------------------
// Bookmark list
// ---------------------------------------------------------------------------

func (m model) renderList() string {
	width := m.listContentWidth()
	if len(m.visible) == 0 {
		if len(m.bookmarks) == 0 {
			return hintStyle.Render("No bookmarks. Press 'a' to add one.")
		}
		return hintStyle.Render("No matches.")
	}

	visible := m.visibleRowCount()
	end := m.topIndex + visible
	if end > len(m.visible) {
		end = len(m.visible)
	}

	var lines []string
	for i := m.topIndex; i < end; i++ {
		b := m.bookmarks[m.visible[i]]

		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("▶ ")
		}

		tags := ""
		if len(b.tags) > 0 {
			tags = tagStyle.Render(" [" + joinTags(b.tags) + "]")
		}
		desc := ""
		if b.desc != "" {
			desc = descStyle.Render(" - " + b.desc)
		}

		head := prefix + nameStyle.Render(b.name) + desc + tags
		urlLine := urlStyle.Render("    " + truncate(b.url, width-4))
		if i == m.cursor {
			head = selectedStyle.Render(padStyledLine(head, width))
		}
		lines = append(lines, head, urlLine)
	}

	if len(m.visible) > visible {
		lines = append(lines, statusStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.visible))))
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Search bar
// ---------------------------------------------------------------------------

func (m model) renderSearchBar() string {
	var content string
	switch {
	case m.mode == modeSearching:
		content = tagStyle.Render(" / ") + searchQStyle.Render(m.searchBuf) + searchCurStyle.Render("█")
	case m.query != "":
		content = labelStyle.Render(" Filter: ") + searchQStyle.Render(m.query)
	default:
		content = hintStyle.Render(" Type / to search")
	}
	return searchBoxStyle.Width(m.sectionWidth()).Render(padStyledLine(content, m.listContentWidth()))
}

// ---------------------------------------------------------------------------
// Modals
// ---------------------------------------------------------------------------

func (m model) renderFormModal(title string) string {
	var lines []string
	for i := 0; i < fieldCount; i++ {
		label := labelStyle.Render(fieldLabels[i])
		if i == m.field {
			label = focusLblStyle.Render(fieldLabels[i])
		}
		lines = append(lines, label, "  "+m.form[i].View(), "")
	}
	return m.renderModal(title, strings.Join(lines, "\n"))
}

func (m model) renderDeleteModal() string {
	name := m.deleteKey
	if name == "" {
		name = "this bookmark"
	}
	body := fmt.Sprintf("Delete %q?\n\n", name) +
		okStyle.Render("y") + labelStyle.Render(": Yes   ") +
		dangerStyle.Render("n") + labelStyle.Render(": No")
	return m.renderModal("Delete", body)
}

func (m model) renderTagModal() string {
	var lines []string
	for i := 0; i <= len(m.tagOptions); i++ {
		label := "(All bookmarks)"
		style := hintStyle
		if i > 0 {
			label = m.tagOptions[i-1]
			style = searchQStyle
		}
		prefix := "  "
		if i == m.tagCursor {
			prefix = cursorStyle.Render("▶ ")
		}
		lines = append(lines, prefix+style.Render(label))
	}
	return m.renderModal("Filter by Tag", strings.Join(lines, "\n"))
}

func (m model) renderModal(title, body string) string {
	width := min(56, max(30, m.width-10))
	header := titleStyle.Render(" " + title + " ")
	content := header + "\n\n" + body
	return modalStyle.Width(width).Render(content)
}

// composeModal overlays the modal centered on the base view.
func (m model) composeModal(base, modal string) string {
	if m.width == 0 || m.height == 0 {
		return base + "\n\n" + modal
	}
	lines := splitLines(modal)
	modalWidth := maxLineWidth(lines)
	modalHeight := len(lines)

	x := (m.width - modalWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (m.height - 2 - modalHeight) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(base, modal, x, y, m.width)
}

// ---------------------------------------------------------------------------
// Chrome: status bar, footer, layout
// ---------------------------------------------------------------------------

func (m model) renderBar(style lipgloss.Style, text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	if m.width == 0 {
		return style.Render(flat)
	}
	return style.Width(m.width).Render(flat)
}

func (m model) renderFooter(bindings []key.Binding) string {
	// Build help text where every character carries the footer background.
	bg := colorSurface1
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}

// ---------------------------------------------------------------------------
// Geometry
// ---------------------------------------------------------------------------

// visibleRowCount returns how many bookmarks fit in the list box. Each
// bookmark renders as two lines.
func (m model) visibleRowCount() int {
	if m.height == 0 {
		return 10
	}
	frameV := listBoxStyle.GetVerticalFrameSize()
	searchHeight := 1 + searchBoxStyle.GetVerticalFrameSize()
	// title + box frame + search bar + status + footer
	available := m.height - 1 - frameV - searchHeight - 2 - 1
	rows := available / 2
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m model) sectionWidth() int {
	if m.width == 0 {
		return 80
	}
	width := m.width - 2
	if width < 20 {
		width = m.width
	}
	return width
}

func (m model) listContentWidth() int {
	w := m.sectionWidth() - listBoxStyle.GetHorizontalFrameSize()
	if w < 20 {
		return 20
	}
	return w
}

// ensureCursorInWindow scrolls topIndex so the cursor stays visible.
func (m *model) ensureCursorInWindow() {
	visible := m.visibleRowCount()
	if visible <= 0 || m.cursor < 0 {
		return
	}
	if m.cursor < m.topIndex {
		m.topIndex = m.cursor
	} else if m.cursor >= m.topIndex+visible {
		m.topIndex = m.cursor - visible + 1
	}
	maxTop := len(m.visible) - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if m.topIndex > maxTop {
		m.topIndex = maxTop
	}
	if m.topIndex < 0 {
		m.topIndex = 0
	}
}

// ---------------------------------------------------------------------------
// String helpers
// ---------------------------------------------------------------------------

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// overlayAt splices overlay into base at visual column x, row y. Base lines
// carry SGR escapes, so all cutting is escape-aware: positions count visible
// cells, never bytes or runes.
func overlayAt(base, overlay string, x, y, width int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}

		overlayLine := padRight(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if width > 0 {
			right = ansi.TruncateLeft(target, pos, "")
			if gap := width - pos - ansi.StringWidth(right); gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}

		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padStyledLine(s string, width int) string {
	return padRight(s, width)
}

// truncate shortens s to width visible cells, appending "…" if cut short.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
