package main

import (
	"path/filepath"
	"reflect"
	"testing"
)

func testStore(t *testing.T) *sqliteStore {
	t.Helper()
	st, err := openStore(filepath.Join(t.TempDir(), "bmk.db"))
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestStoreLoadEmpty(t *testing.T) {
	st := testStore(t)
	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load on fresh db = %d bookmarks, want 0", len(got))
	}
}

func TestStoreRoundTrip(t *testing.T) {
	st := testStore(t)
	want := flowFixture()

	if err := st.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestStorePreservesInsertionOrder(t *testing.T) {
	st := testStore(t)
	// Deliberately not alphabetical: order must come from position, not name.
	want := []bookmark{
		{id: "z", name: "zulu", url: "https://z.example"},
		{id: "a", name: "alpha", url: "https://a.example"},
		{id: "m", name: "mike", url: "https://m.example"},
	}
	if err := st.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := range want {
		if got[i].name != want[i].name {
			t.Errorf("row %d = %q, want %q", i, got[i].name, want[i].name)
		}
	}
}

func TestStoreSaveIsIdempotentOverwrite(t *testing.T) {
	st := testStore(t)
	first := flowFixture()
	if err := st.Save(first); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	second := first[:2]
	if err := st.Save(second); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if err := st.Save(second); err != nil {
		t.Fatalf("repeated Save: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("stored = %d bookmarks, want 2 (full overwrite)", len(got))
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmk.db")
	st, err := openStore(path)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	if err := st.Save(flowFixture()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen runs migrations again; they must be a no-op.
	st2, err := openStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()
	got, err := st2.Load()
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("reopened store = %d bookmarks, want 3", len(got))
	}
}

func TestOpenStoreCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "bmk.db")
	st, err := openStore(path)
	if err != nil {
		t.Fatalf("openStore with missing parents: %v", err)
	}
	_ = st.Close()
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , , ", nil},
		{"dev", []string{"dev"}},
		{"dev, docs , reading", []string{"dev", "docs", "reading"}},
		{",trailing,", []string{"trailing"}},
	}
	for _, c := range cases {
		if got := splitTags(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("splitTags(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestJoinTagsRoundTrip(t *testing.T) {
	tags := []string{"dev", "docs"}
	if got := splitTags(joinTags(tags)); !reflect.DeepEqual(got, tags) {
		t.Errorf("splitTags(joinTags) = %v, want %v", got, tags)
	}
}
