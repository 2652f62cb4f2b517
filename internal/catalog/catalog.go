package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"eduquest_backend/pkg/logger"

	"go.uber.org/zap"
)

// Item is one entry in the static quiz or game bank. Catalogs are loaded
// wholesale at startup and treated as immutable lookup tables.
type Item struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Chapter    string `json:"chapter"`
	Title      string `json:"title"`
	Difficulty int    `json:"difficulty"`
	Remedial   bool   `json:"remedial"`
}

// Outcome is a learning-outcome entry keyed by chapter.
type Outcome struct {
	Chapter     string `json:"chapter"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Catalog struct {
	Quizzes  []Item
	Games    []Item
	Outcomes []Outcome
}

// Load reads the catalog files from dir. A missing file degrades to an
// empty dataset with a warning; some deployments ship without all banks.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{}

	if err := loadFile(filepath.Join(dir, "quizzes.json"), &c.Quizzes); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, "games.json"), &c.Games); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, "outcomes.json"), &c.Outcomes); err != nil {
		return nil, err
	}

	for i := range c.Quizzes {
		c.Quizzes[i].Type = "quiz"
	}
	for i := range c.Games {
		c.Games[i].Type = "game"
	}

	return c, nil
}

func loadFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if logger.Log != nil {
			logger.Log.Warn("catalog file missing, using empty dataset", zap.String("path", path))
		}
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// Chapters returns the sorted union of chapters present in the quiz and
// game banks.
func (c *Catalog) Chapters() []string {
	seen := make(map[string]bool)
	var chapters []string
	for _, item := range append(append([]Item{}, c.Quizzes...), c.Games...) {
		if item.Chapter != "" && !seen[item.Chapter] {
			seen[item.Chapter] = true
			chapters = append(chapters, item.Chapter)
		}
	}
	sort.Strings(chapters)
	return chapters
}

// RemedialContent returns remedial-flagged items for a chapter at or below
// the given difficulty.
func (c *Catalog) RemedialContent(chapter string, maxDifficulty int) []Item {
	var items []Item
	for _, item := range append(append([]Item{}, c.Quizzes...), c.Games...) {
		if item.Chapter == chapter && item.Remedial && item.Difficulty <= maxDifficulty {
			items = append(items, item)
		}
	}
	return items
}

// OutcomesFor returns the learning outcomes attached to a chapter.
func (c *Catalog) OutcomesFor(chapter string) []Outcome {
	var out []Outcome
	for _, o := range c.Outcomes {
		if o.Chapter == chapter {
			out = append(out, o)
		}
	}
	return out
}
