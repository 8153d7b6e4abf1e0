package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Interaction state machine
// ---------------------------------------------------------------------------
//
// One mode at a time owns the keyboard. Every collection mutation is
// followed by a synchronous write-through save before the next event is
// processed; a failed save is surfaced in the status bar but never rolls
// back the in-memory change.

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDoneMsg:
		return m.handleLoadDone(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInWindow()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeSearching:
			return m.updateSearching(msg)
		case modeAdding, modeEditing:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeChoosingTag:
			return m.updateTagPicker(msg)
		default:
			return m.updateBrowsing(msg)
		}
	}
	return m, nil
}

func (m model) handleLoadDone(msg loadDoneMsg) (tea.Model, tea.Cmd) {
	m.ready = true
	if msg.err != nil {
		m.status = fmt.Sprintf("load failed: %v", msg.err)
		return m, nil
	}
	m.bookmarks = msg.bookmarks
	m.refilter(m.query)
	if m.status == "" {
		m.status = "Ready. Press / to search, a to add, enter to open."
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Browsing
// ---------------------------------------------------------------------------

func (m model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "down", "j", "ctrl+n":
		m.selectionNext()
		return m, nil
	case "up", "k", "ctrl+p":
		m.selectionPrev()
		return m, nil
	case "g":
		m.selectIndex(0)
		return m, nil
	case "G":
		m.selectIndex(len(m.visible) - 1)
		return m, nil
	case "enter":
		// Terminal action: capture the selected url and end the session.
		if b, ok := m.current(); ok {
			m.urlToOpen = b.url
			return m, tea.Quit
		}
		return m, nil
	case "/":
		m.mode = modeSearching
		m.searchBuf = ""
		return m, nil
	case "a":
		return m.startAdd(), nil
	case "e":
		return m.startEdit(), nil
	case "d":
		if b, ok := m.current(); ok {
			m.deleteKey = b.name
			m.mode = modeConfirmDelete
		}
		return m, nil
	case "t":
		tags := allTags(m.bookmarks)
		if len(tags) == 0 {
			m.status = "No tags yet."
			return m, nil
		}
		m.tagOptions = tags
		m.tagCursor = 0
		m.mode = modeChoosingTag
		return m, nil
	case "c":
		m.tagFilter = ""
		m.refilter(m.query)
		return m, nil
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Searching
// ---------------------------------------------------------------------------
//
// Every edit of the working buffer re-runs the filter immediately. Enter
// commits the buffer as the active query and returns to browsing with the
// filtered view intact; esc drops both buffer and query, restoring the
// unfiltered view (the tag constraint, if any, still applies).

func (m model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := msg.String(); s {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.searchBuf = ""
		m.query = ""
		m.refilter("")
		m.mode = modeBrowsing
		return m, nil
	case "enter":
		m.query = m.searchBuf
		m.mode = modeBrowsing
		return m, nil
	case "backspace":
		if m.searchBuf != "" {
			runes := []rune(m.searchBuf)
			m.searchBuf = string(runes[:len(runes)-1])
			m.refilter(m.searchBuf)
		}
		return m, nil
	case "down", "ctrl+n":
		m.selectionNext()
		return m, nil
	case "up", "ctrl+p":
		m.selectionPrev()
		return m, nil
	default:
		if s == "space" {
			s = " "
		}
		if isPrintableKey(s) {
			m.searchBuf += s
			m.refilter(m.searchBuf)
		}
		return m, nil
	}
}

func isPrintableKey(keyName string) bool {
	runes := []rune(keyName)
	return len(runes) == 1 && runes[0] >= ' ' && runes[0] != 127
}

// ---------------------------------------------------------------------------
// Add / Edit form
// ---------------------------------------------------------------------------

func (m model) startAdd() model {
	for i := range m.form {
		m.form[i].SetValue("")
	}
	m.editKey = ""
	m.mode = modeAdding
	m.setFormFocus(fieldName)
	return m
}

func (m model) startEdit() model {
	b, ok := m.current()
	if !ok {
		return m
	}
	m.form[fieldName].SetValue(b.name)
	m.form[fieldURL].SetValue(b.url)
	m.form[fieldDesc].SetValue(b.desc)
	m.form[fieldTags].SetValue(joinTags(b.tags))
	m.editKey = b.name
	m.mode = modeEditing
	m.setFormFocus(fieldName)
	return m
}

func (m *model) setFormFocus(field int) {
	m.field = field
	for i := range m.form {
		if i == field {
			m.form[i].Focus()
			m.form[i].CursorEnd()
		} else {
			m.form[i].Blur()
		}
	}
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Discard the draft without touching the collection.
		m.mode = modeBrowsing
		return m, nil
	case "tab", "enter":
		if m.field == fieldTags {
			return m.commitForm(), nil
		}
		m.setFormFocus(m.field + 1)
		return m, nil
	case "shift+tab":
		if m.field > fieldName {
			m.setFormFocus(m.field - 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form[m.field], cmd = m.form[m.field].Update(msg)
	return m, cmd
}

// commitForm converts the draft into a committed bookmark. A commit with an
// empty name or url, or one that would duplicate another bookmark's name,
// is blocked: the user stays in the form and the collection is untouched.
func (m model) commitForm() model {
	name := m.form[fieldName].Value()
	url := m.form[fieldURL].Value()
	if name == "" || url == "" {
		m.status = "Name and URL are required."
		return m
	}

	b := bookmark{
		name: name,
		url:  url,
		desc: m.form[fieldDesc].Value(),
		tags: splitTags(m.form[fieldTags].Value()),
	}

	if m.mode == modeEditing {
		idx := findByName(m.bookmarks, m.editKey)
		if idx < 0 {
			// Edit target vanished underneath us; nothing sensible to
			// replace, so drop the draft.
			m.status = fmt.Sprintf("Bookmark %q no longer exists.", m.editKey)
			m.mode = modeBrowsing
			m.refilter(m.query)
			return m
		}
		if dup := findByName(m.bookmarks, name); dup >= 0 && dup != idx {
			m.status = fmt.Sprintf("Bookmark %q already exists.", name)
			return m
		}
		b.id = m.bookmarks[idx].id
		bookmarks := append([]bookmark(nil), m.bookmarks...)
		bookmarks[idx] = b
		m.bookmarks = bookmarks
		m.status = fmt.Sprintf("Updated %q.", name)
	} else {
		if findByName(m.bookmarks, name) >= 0 {
			m.status = fmt.Sprintf("Bookmark %q already exists.", name)
			return m
		}
		b.id = uuid.NewString()
		m.bookmarks = append(append([]bookmark(nil), m.bookmarks...), b)
		m.status = fmt.Sprintf("Added %q.", name)
	}

	m.saveCollection()
	m.mode = modeBrowsing
	m.refilter(m.query)
	return m
}

// ---------------------------------------------------------------------------
// Delete confirmation
// ---------------------------------------------------------------------------

func (m model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "enter":
		// Delete by stored identity, not by the transient cursor.
		if idx := findByName(m.bookmarks, m.deleteKey); idx >= 0 {
			bookmarks := append([]bookmark(nil), m.bookmarks[:idx]...)
			bookmarks = append(bookmarks, m.bookmarks[idx+1:]...)
			m.bookmarks = bookmarks
			m.status = fmt.Sprintf("Deleted %q.", m.deleteKey)
			m.saveCollection()
		}
		m.deleteKey = ""
		m.mode = modeBrowsing
		m.refilter(m.query)
		return m, nil
	case "n", "esc":
		m.deleteKey = ""
		m.mode = modeBrowsing
		return m, nil
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Tag picker
// ---------------------------------------------------------------------------
//
// Row 0 is the synthetic "all bookmarks" entry; rows 1..n map to
// m.tagOptions[row-1].

func (m model) updateTagPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(m.tagOptions) + 1
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeBrowsing
		return m, nil
	case "enter":
		if m.tagCursor == 0 {
			m.tagFilter = ""
		} else {
			m.tagFilter = m.tagOptions[m.tagCursor-1]
		}
		m.refilter(m.query)
		m.mode = modeBrowsing
		return m, nil
	case "down", "j":
		m.tagCursor = (m.tagCursor + 1) % rows
		return m, nil
	case "up", "k":
		m.tagCursor = (m.tagCursor - 1 + rows) % rows
		return m, nil
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Persistence write-through
// ---------------------------------------------------------------------------

// saveCollection writes the whole collection through to the store. Errors
// surface in the status bar; the in-memory mutation stands either way and
// the next mutation retries the write.
func (m *model) saveCollection() {
	if err := m.store.Save(m.bookmarks); err != nil {
		m.status = fmt.Sprintf("Save failed: %v", err)
	}
}
