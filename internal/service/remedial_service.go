package service

import (
	"sort"

	"eduquest_backend/internal/catalog"
	"eduquest_backend/internal/model"
	"eduquest_backend/internal/scoring"
)

// ChapterScore is one (content, chapter, score) tuple feeding the planner.
type ChapterScore struct {
	ContentID string `json:"contentId"`
	Chapter   string `json:"chapter" binding:"required"`
	Score     int    `json:"score" binding:"min=0,max=100"`
}

// ChapterVerdict is the planner's per-chapter output.
type ChapterVerdict struct {
	Chapter      string                 `json:"chapter"`
	Assessed     bool                   `json:"assessed"`
	AverageScore int                    `json:"averageScore"`
	Status       scoring.RemedialStatus `json:"status"`
	Content      []catalog.Item         `json:"content"`
}

type StudentAttemptSource interface {
	ListByStudent(studentID uint) ([]model.Attempt, error)
}

type MasterySource interface {
	ListByStudent(studentID uint) ([]model.MasteryRecord, error)
}

type RemedialService struct {
	Catalog  *catalog.Catalog
	Attempts StudentAttemptSource
	Mastery  MasterySource
}

func NewRemedialService(cat *catalog.Catalog, attempts StudentAttemptSource, mastery MasterySource) *RemedialService {
	return &RemedialService{Catalog: cat, Attempts: attempts, Mastery: mastery}
}

// StudentMastery returns the stored per-skill records for one student.
func (s *RemedialService) StudentMastery(studentID uint) ([]model.MasteryRecord, error) {
	return s.Mastery.ListByStudent(studentID)
}

// BuildPlan is a pure function of its input and the static catalog: group
// scores by chapter, average, classify, and attach remedial content for the
// lower bands. Catalog chapters with no scores come back not-yet-assessed.
func (s *RemedialService) BuildPlan(scores []ChapterScore) []ChapterVerdict {
	byChapter := make(map[string][]int)
	for _, score := range scores {
		if score.Chapter == "" {
			continue
		}
		byChapter[score.Chapter] = append(byChapter[score.Chapter], score.Score)
	}

	chapters := s.Catalog.Chapters()
	inCatalog := make(map[string]bool, len(chapters))
	for _, ch := range chapters {
		inCatalog[ch] = true
	}

	// Scored chapters outside the catalog still get a verdict, appended
	// after the catalog's own ordering.
	var extra []string
	for ch := range byChapter {
		if !inCatalog[ch] {
			extra = append(extra, ch)
		}
	}
	sort.Strings(extra)
	chapters = append(chapters, extra...)

	verdicts := make([]ChapterVerdict, 0, len(chapters))
	for _, chapter := range chapters {
		chapterScores, assessed := byChapter[chapter]
		if !assessed {
			verdicts = append(verdicts, ChapterVerdict{
				Chapter: chapter,
				Status:  scoring.StatusNotAssessed,
				Content: []catalog.Item{},
			})
			continue
		}

		average := scoring.Average(chapterScores)
		status := scoring.Classify(average)

		content := []catalog.Item{}
		if maxDifficulty, ok := scoring.MaxDifficultyFor(status); ok {
			content = append(content, s.Catalog.RemedialContent(chapter, maxDifficulty)...)
		}

		verdicts = append(verdicts, ChapterVerdict{
			Chapter:      chapter,
			Assessed:     true,
			AverageScore: average,
			Status:       status,
			Content:      content,
		})
	}

	return verdicts
}

// PlanForStudent derives the score tuples from the student's recorded
// attempts (percentage per content key) and feeds them to BuildPlan.
func (s *RemedialService) PlanForStudent(studentID uint) ([]ChapterVerdict, error) {
	attempts, err := s.Attempts.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}

	scores := make([]ChapterScore, 0, len(attempts))
	for _, a := range attempts {
		if a.Chapter == "" {
			continue
		}
		scores = append(scores, ChapterScore{
			ContentID: a.ContentKey,
			Chapter:   a.Chapter,
			Score:     a.Percentage,
		})
	}

	return s.BuildPlan(scores), nil
}
