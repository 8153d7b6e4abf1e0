package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestViewShowsStatusBeforeReady(t *testing.T) {
	m := newModel(&fakeStore{})
	m.status = "loading"
	if !strings.Contains(m.View(), "loading") {
		t.Error("pre-ready view should show the status text")
	}
}

func TestRenderListEmptyStates(t *testing.T) {
	m := newModel(&fakeStore{})
	m.ready = true

	if got := m.renderList(); !strings.Contains(got, "add one") {
		t.Errorf("empty collection hint missing: %q", got)
	}

	m.bookmarks = flowFixture()
	m.refilter("nothing matches this at all")
	if got := m.renderList(); !strings.Contains(got, "No matches") {
		t.Errorf("no-match hint missing: %q", got)
	}
}

func TestRenderListShowsBookmarks(t *testing.T) {
	m := newModel(&fakeStore{})
	m.ready = true
	m.width = 100
	m.height = 30
	m.bookmarks = flowFixture()
	m.refilter("")

	got := m.renderList()
	for _, want := range []string{"github", "golang docs", "news"} {
		if !strings.Contains(got, want) {
			t.Errorf("list missing %q", want)
		}
	}
}

func TestViewTitleShowsTagConstraint(t *testing.T) {
	m := newModel(&fakeStore{})
	m.ready = true
	m.width = 100
	m.height = 30
	m.bookmarks = flowFixture()
	m.tagFilter = "dev"
	m.refilter("")

	if !strings.Contains(m.View(), "[tag: dev]") {
		t.Error("title should surface the active tag constraint")
	}
}

func TestViewRendersModals(t *testing.T) {
	m := newModel(&fakeStore{})
	m.ready = true
	m.width = 100
	m.height = 30
	m.bookmarks = flowFixture()
	m.refilter("")

	m.mode = modeAdding
	if !strings.Contains(m.View(), "Add Bookmark") {
		t.Error("adding mode should overlay the form modal")
	}

	m.mode = modeConfirmDelete
	m.deleteKey = "github"
	if !strings.Contains(m.View(), "Delete") {
		t.Error("confirm mode should overlay the delete modal")
	}

	m.mode = modeChoosingTag
	m.tagOptions = []string{"dev"}
	if !strings.Contains(m.View(), "All bookmarks") {
		t.Error("tag modal should offer the all-bookmarks row")
	}
}

func TestEnsureCursorInWindowScrolls(t *testing.T) {
	m := newModel(&fakeStore{})
	m.ready = true
	m.width = 80
	m.height = 14 // small window forces scrolling
	for i := 0; i < 20; i++ {
		m.bookmarks = append(m.bookmarks, bookmark{name: string(rune('a' + i)), url: "https://x.example"})
	}
	m.refilter("")

	m.selectIndex(19)
	if m.topIndex == 0 {
		t.Error("cursor at the bottom should scroll the window")
	}
	if m.cursor < m.topIndex || m.cursor >= m.topIndex+m.visibleRowCount() {
		t.Errorf("cursor %d outside window [%d, %d)", m.cursor, m.topIndex, m.topIndex+m.visibleRowCount())
	}

	m.selectIndex(0)
	if m.topIndex != 0 {
		t.Errorf("cursor at the top should scroll back, topIndex = %d", m.topIndex)
	}
}

func TestOverlayAt(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"
	got := overlayAt(base, "XX", 4, 1, 10)
	lines := strings.Split(got, "\n")
	if lines[1] != "bbbbXXbbbb" {
		t.Errorf("overlay row = %q", lines[1])
	}
	if lines[0] != "aaaaaaaaaa" || lines[2] != "cccccccccc" {
		t.Error("overlay touched rows outside its extent")
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight must not truncate, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a very long url", 6); got != "a ver…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Errorf("truncate to 0 = %q", got)
	}
}

func TestOverlayAtPreservesStyledBase(t *testing.T) {
	// Base lines carry SGR escapes; the splice must count visible cells,
	// not bytes, and never cut an escape sequence in half.
	styled := "\x1b[38;2;243;139;168m0123456789\x1b[0m"
	got := overlayAt(styled, "[MODAL]", 5, 0, 40)
	line := splitLines(got)[0]

	i := strings.Index(line, "[MODAL]")
	if i < 0 {
		t.Fatalf("overlay text missing from %q", line)
	}
	left := line[:i]
	if w := ansi.StringWidth(left); w != 5 {
		t.Errorf("left of overlay renders %d visible columns, want 5", w)
	}
	plain := ansi.Strip(line)
	if !strings.HasPrefix(plain, "01234[MODAL]") {
		t.Errorf("visible content = %q, want 01234[MODAL]...", plain)
	}
	if strings.Contains(plain, "\x1b") {
		t.Errorf("stripped line still contains escape bytes: %q", plain)
	}
	if w := ansi.StringWidth(line); w != 40 {
		t.Errorf("composited line is %d columns wide, want 40", w)
	}
}

func TestTruncateKeepsStyledPrefix(t *testing.T) {
	styled := "\x1b[2mhttps://example.com/very/long/path\x1b[0m"
	got := truncate(styled, 10)
	if w := ansi.StringWidth(got); w != 10 {
		t.Errorf("truncated width = %d, want 10", w)
	}
	if !strings.HasSuffix(ansi.Strip(got), "…") {
		t.Errorf("truncated text %q missing ellipsis", ansi.Strip(got))
	}
}

func TestFooterStylesKeysDistinctly(t *testing.T) {
	m := newModel(&fakeStore{})
	m.width = 80
	footer := m.renderFooter(m.keys.helpFor(modeBrowsing))
	plain := ansi.Strip(footer)
	for _, want := range []string{"open", "search", "add", "quit"} {
		if !strings.Contains(plain, want) {
			t.Errorf("footer missing %q: %q", want, plain)
		}
	}
}
