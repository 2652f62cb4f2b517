package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"eduquest_backend/internal/catalog"
)

func writeTempCatalog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	quizzes := `[
		{"id": "q-read-1", "chapter": "Reading", "title": "Letter sounds", "difficulty": 1, "remedial": true},
		{"id": "q-read-2", "chapter": "Reading", "title": "Short stories", "difficulty": 3, "remedial": false},
		{"id": "q-num-1", "chapter": "Numbers", "title": "Counting to 20", "difficulty": 2, "remedial": true}
	]`
	games := `[
		{"id": "g-read-1", "chapter": "Reading", "title": "Word match", "difficulty": 2, "remedial": true},
		{"id": "g-shape-1", "chapter": "Shapes", "title": "Shape sorter", "difficulty": 1, "remedial": false}
	]`
	outcomes := `[
		{"chapter": "Reading", "code": "R1", "description": "Recognizes letter sounds"}
	]`

	for name, body := range map[string]string{
		"quizzes.json":  quizzes,
		"games.json":    games,
		"outcomes.json": outcomes,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad_SetsItemTypes(t *testing.T) {
	c, err := catalog.Load(writeTempCatalog(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(c.Quizzes) != 3 || len(c.Games) != 2 {
		t.Fatalf("unexpected sizes: %d quizzes, %d games", len(c.Quizzes), len(c.Games))
	}
	if c.Quizzes[0].Type != "quiz" {
		t.Errorf("quiz type = %q, want quiz", c.Quizzes[0].Type)
	}
	if c.Games[0].Type != "game" {
		t.Errorf("game type = %q, want game", c.Games[0].Type)
	}
}

func TestLoad_MissingFilesAreEmpty(t *testing.T) {
	c, err := catalog.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load on empty dir: %v", err)
	}
	if len(c.Quizzes) != 0 || len(c.Games) != 0 || len(c.Outcomes) != 0 {
		t.Error("expected empty catalogs for missing files")
	}
}

func TestChapters_SortedUnion(t *testing.T) {
	c, err := catalog.Load(writeTempCatalog(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := c.Chapters()
	want := []string{"Numbers", "Reading", "Shapes"}
	if len(got) != len(want) {
		t.Fatalf("Chapters() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Chapters()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRemedialContent_FiltersByDifficulty(t *testing.T) {
	c, err := catalog.Load(writeTempCatalog(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Difficulty 1 only: the level-2 word match game must be excluded.
	items := c.RemedialContent("Reading", 1)
	if len(items) != 1 || items[0].ID != "q-read-1" {
		t.Errorf("RemedialContent(Reading, 1) = %v, want just q-read-1", items)
	}

	// Difficulty up to 2 picks up the game as well.
	items = c.RemedialContent("Reading", 2)
	if len(items) != 2 {
		t.Errorf("RemedialContent(Reading, 2) returned %d items, want 2", len(items))
	}

	// Non-remedial content never appears.
	for _, item := range items {
		if !item.Remedial {
			t.Errorf("non-remedial item %s returned", item.ID)
		}
	}
}
