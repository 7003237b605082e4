package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreWriteAndReload(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	rec := Record{
		Slug:        "2016-kaytranada-lite-spots",
		Title:       "Lite Spots",
		Artist:      "Kaytranada",
		PublishDate: "2016-04-05",
	}
	if err := store.Write(rec); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !store.Exists(rec.Slug) {
		t.Fatal("record should exist after write")
	}

	loaded, err := store.Get(rec.Slug)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.Title != rec.Title || loaded.Artist != rec.Artist {
		t.Fatalf("round trip changed record: %+v", loaded)
	}
}

func TestStoreSlugsSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)

	for _, slug := range []string{"2019-b-b", "2015-a-a", "2017-c-c"} {
		if err := store.Write(Record{Slug: slug, Title: "t", Artist: "a"}); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seeding stray file: %v", err)
	}

	slugs, err := store.Slugs()
	if err != nil {
		t.Fatalf("slugs failed: %v", err)
	}
	want := []string{"2015-a-a", "2017-c-c", "2019-b-b"}
	if len(slugs) != len(want) {
		t.Fatalf("unexpected slugs: %v", slugs)
	}
	for i := range want {
		if slugs[i] != want[i] {
			t.Fatalf("unexpected slug order: %v", slugs)
		}
	}
}

func TestStoreLoadAllSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)

	if err := store.Write(Record{Slug: "2016-good-one", Title: "One", Artist: "Good"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "2016-broken-one.md"), []byte("no header here\n"), 0o644); err != nil {
		t.Fatalf("seeding broken record: %v", err)
	}

	records, malformed, err := store.LoadAll()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(records) != 1 || records[0].Slug != "2016-good-one" {
		t.Fatalf("unexpected records: %+v", records)
	}
	if len(malformed) != 1 {
		t.Fatalf("expected one malformed report, got %v", malformed)
	}
}

func TestStoreRenameMovesIdentity(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	rec := Record{Slug: "2016-wrong-artist-song", Title: "Song", Artist: "Wrong Artist"}
	if err := store.Write(rec); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rec.Slug = "2016-right-artist-song"
	rec.Artist = "Right Artist"
	if err := store.Rename("2016-wrong-artist-song", rec); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if store.Exists("2016-wrong-artist-song") {
		t.Fatal("old identity should be gone")
	}
	if !store.Exists("2016-right-artist-song") {
		t.Fatal("new identity should exist")
	}
}
