package sourcetable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTable = `Artist,Title,Director,Year,Authority_Signal,Visual_Hook
Kaytranada,Lite Spots,Martin C. Pariseau,2016,Pitchfork BNM,Dancing robot
IDLES,Grounds,,2020,,
,No Artist Row,Someone,2018,,
`

func TestReadPreservesOrderAndLines(t *testing.T) {
	records, err := Read(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(records))
	}
	if records[0].Artist != "Kaytranada" || records[0].Line != 2 {
		t.Fatalf("unexpected first row: %+v", records[0])
	}
	if records[1].Director != "" || records[1].Year != "2020" {
		t.Fatalf("unexpected second row: %+v", records[1])
	}
	if records[2].Complete() {
		t.Fatalf("row without artist must be incomplete: %+v", records[2])
	}
	if !records[0].Complete() {
		t.Fatal("full row must be complete")
	}
}

func TestReadOptionalColumns(t *testing.T) {
	records, err := Read(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if records[0].AuthoritySignal != "Pitchfork BNM" || records[0].VisualHook != "Dancing robot" {
		t.Fatalf("optional columns not mapped: %+v", records[0])
	}
	if records[0].TargetURL != "" {
		t.Fatalf("absent column must read empty, got %q", records[0].TargetURL)
	}
}

func TestReadShortRows(t *testing.T) {
	table := "Artist,Title,Director,Year\nPortishead,Machine Gun\n"
	records, err := Read(strings.NewReader(table))
	if err != nil {
		t.Fatalf("short rows must be tolerated: %v", err)
	}
	if records[0].Year != "" || records[0].Title != "Machine Gun" {
		t.Fatalf("unexpected row: %+v", records[0])
	}
}

func TestReadRejectsMissingRequiredColumn(t *testing.T) {
	_, err := Read(strings.NewReader("Artist,Title,Year\nA,B,2020\n"))
	if err == nil || !strings.Contains(err.Error(), "Director") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestDiscoverSkipsGeneratedOutputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2016.csv", "2024_new.csv", "result.csv", "summary.csv", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("Artist,Title,Director,Year\n"), 0o644); err != nil {
			t.Fatalf("seeding %s: %v", name, err)
		}
	}
	paths, err := Discover(dir)
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("unexpected discovery result: %v", paths)
	}
	if filepath.Base(paths[0]) != "2016.csv" || filepath.Base(paths[1]) != "2024_new.csv" {
		t.Fatalf("unexpected order: %v", paths)
	}
}
