package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

const appName = "bmk"

// bookmark is one stored entry. name is the unique user-facing identity;
// id is a stable uuid assigned when the bookmark is created and preserved
// across edits.
type bookmark struct {
	id   string
	name string
	url  string
	desc string
	tags []string
}

// ---------------------------------------------------------------------------
// Interaction modes
// ---------------------------------------------------------------------------

const (
	modeBrowsing = iota
	modeSearching
	modeAdding
	modeEditing
	modeConfirmDelete
	modeChoosingTag
)

// Form field cursor for the add/edit modal, in tab order.
const (
	fieldName = iota
	fieldURL
	fieldDesc
	fieldTags
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "URL", "Description", "Tags (comma-separated)"}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type loadDoneMsg struct {
	bookmarks []bookmark
	err       error
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// model owns the collection for the session. All mutation happens through
// Update; the filter and ranker only ever read the collection.
type model struct {
	store store

	bookmarks []bookmark
	visible   []int // indices into bookmarks, ranked
	cursor    int   // index into visible; -1 when visible is empty
	topIndex  int   // first visible row shown, for list scrolling

	mode      int
	query     string // committed search query
	searchBuf string // working query buffer while searching
	tagFilter string // "" = no constraint

	// Add/Edit form state.
	form    [fieldCount]textinput.Model
	field   int
	editKey string // identity of the bookmark being replaced on commit

	deleteKey string // identity pending delete confirmation

	// Tag picker state. tagOptions excludes the synthetic "all" row, which
	// is always rendered first; tagCursor 0 selects it.
	tagOptions []string
	tagCursor  int

	status    string
	urlToOpen string
	ready     bool
	width     int
	height    int

	keys keyMap
}

func newModel(st store) model {
	m := model{
		store:  st,
		cursor: -1,
		keys:   newKeyMap(),
	}
	for i := range m.form {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		m.form[i] = ti
	}
	return m
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		bookmarks, err := m.store.Load()
		return loadDoneMsg{bookmarks: bookmarks, err: err}
	}
}

// ---------------------------------------------------------------------------
// Selection model
// ---------------------------------------------------------------------------

// selectionNext advances the highlighted row, wrapping around. No-op when
// the visible set is empty.
func (m *model) selectionNext() {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.visible)
	m.ensureCursorInWindow()
}

func (m *model) selectionPrev() {
	if len(m.visible) == 0 {
		return
	}
	if m.cursor <= 0 {
		m.cursor = len(m.visible) - 1
	} else {
		m.cursor--
	}
	m.ensureCursorInWindow()
}

func (m *model) selectIndex(i int) {
	if i < 0 || i >= len(m.visible) {
		return
	}
	m.cursor = i
	m.ensureCursorInWindow()
}

// current returns the concrete selected bookmark, mapping the cursor
// through the visible set into the collection.
func (m model) current() (bookmark, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return bookmark{}, false
	}
	idx := m.visible[m.cursor]
	if idx < 0 || idx >= len(m.bookmarks) {
		return bookmark{}, false
	}
	return m.bookmarks[idx], true
}

// refilter recomputes the visible set for the given query and resets the
// selection to the first row (or none). Selection identity is deliberately
// not preserved across re-filtering.
func (m *model) refilter(query string) {
	m.visible = visibleIndices(m.bookmarks, query, m.tagFilter)
	if len(m.visible) == 0 {
		m.cursor = -1
	} else {
		m.cursor = 0
	}
	m.topIndex = 0
}

// findByName returns the collection index of the bookmark with the given
// name, or -1. Names are exact-match identities.
func findByName(bookmarks []bookmark, name string) int {
	for i, b := range bookmarks {
		if b.name == name {
			return i
		}
	}
	return -1
}
