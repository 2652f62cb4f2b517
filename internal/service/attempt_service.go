package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"eduquest_backend/internal/model"
	"eduquest_backend/internal/scoring"
	"eduquest_backend/pkg/logger"
	"eduquest_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Stores the recorder depends on. Narrow interfaces so tests can run
// against hand-rolled fakes instead of a database.
type AttemptStore interface {
	Create(attempt *model.Attempt) error
}

type ClassFinder interface {
	FindByCode(code string) (*model.Class, error)
}

type RosterStore interface {
	FindOrCreate(classID uint, nickname string) (*model.Student, error)
}

type MasteryStore interface {
	Upsert(record *model.MasteryRecord) error
}

// skillDomains are the chapter labels that additionally feed a domain-level
// mastery record. Exact string match against this list, nothing smarter.
var skillDomains = []string{"Reading", "Writing", "Numbers"}

type AttemptService struct {
	Attempts AttemptStore
	Classes  ClassFinder
	Roster   RosterStore
	Mastery  MasteryStore
}

func NewAttemptService(attempts AttemptStore, classes ClassFinder, roster RosterStore, mastery MasteryStore) *AttemptService {
	return &AttemptService{
		Attempts: attempts,
		Classes:  classes,
		Roster:   roster,
		Mastery:  mastery,
	}
}

type SubmitAttemptInput struct {
	Nickname    string                 `json:"nickname" binding:"required,max=100"`
	ClassCode   string                 `json:"classCode" binding:"required,max=20"`
	ContentType model.ContentType      `json:"contentType" binding:"omitempty,oneof=quiz game activity"`
	ContentID   *uint                  `json:"contentId"`
	ContentKey  string                 `json:"contentKey"`
	Chapter     string                 `json:"chapter"`
	Answers     map[string]interface{} `json:"answers"`
	Score       int                    `json:"score" binding:"min=0"`
	Total       int                    `json:"total" binding:"required,min=1"`
	TimeSpent   int                    `json:"timeSpentSeconds" binding:"min=0"`
}

var ErrInvalidAttempt = errors.New("invalid attempt payload")

// RecordAttempt validates and persists a learner submission, then applies
// the mastery update best-effort. The attempt write is authoritative: a
// mastery failure is logged and dropped, never rolled into the response.
func (s *AttemptService) RecordAttempt(in *SubmitAttemptInput) (*model.Attempt, error) {
	if in.Nickname == "" || in.ClassCode == "" {
		return nil, fmt.Errorf("%w: nickname and classCode are required", ErrInvalidAttempt)
	}
	if in.Score < 0 || in.Total < 1 || in.TimeSpent < 0 {
		return nil, fmt.Errorf("%w: score, total and timeSpentSeconds out of range", ErrInvalidAttempt)
	}

	// Percentage is always derived server-side so the recorder and every
	// consumer agree on the rounding.
	percentage := scoring.Percentage(in.Score, in.Total)

	// Unknown class codes are tolerated: the attempt is kept as an orphan
	// and simply cannot feed a roster-bound mastery record.
	var classID *uint
	var student *model.Student
	class, err := s.Classes.FindByCode(in.ClassCode)
	switch {
	case err == nil:
		classID = &class.ID
		student, err = s.Roster.FindOrCreate(class.ID, in.Nickname)
		if err != nil {
			logger.Log.Warn("roster resolution failed, recording attempt without student",
				zap.String("classCode", in.ClassCode),
				zap.String("nickname", in.Nickname),
				zap.Error(err))
			student = nil
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// orphaned attempt
	default:
		return nil, err
	}

	answers := "{}"
	if in.Answers != nil {
		raw, err := json.Marshal(in.Answers)
		if err != nil {
			return nil, fmt.Errorf("%w: answers not serializable", ErrInvalidAttempt)
		}
		answers = string(raw)
	}

	attempt := &model.Attempt{
		Nickname:    in.Nickname,
		ClassCode:   in.ClassCode,
		ClassID:     classID,
		ContentType: in.ContentType,
		ContentID:   in.ContentID,
		ContentKey:  s.contentKey(in),
		Chapter:     in.Chapter,
		Answers:     answers,
		Score:       in.Score,
		Total:       in.Total,
		Percentage:  percentage,
		TimeSpent:   in.TimeSpent,
		CompletedAt: time.Now(),
	}
	if student != nil {
		attempt.StudentID = &student.ID
	}

	if err := s.Attempts.Create(attempt); err != nil {
		return nil, err
	}
	monitoring.AttemptsRecorded.Inc()

	if student != nil && attempt.ContentKey != "" {
		s.updateMastery(student.ID, attempt.ContentKey, in.Chapter, percentage, attempt.ID)
	}

	return attempt, nil
}

func (s *AttemptService) contentKey(in *SubmitAttemptInput) string {
	if in.ContentKey != "" {
		return in.ContentKey
	}
	if in.ContentID != nil && in.ContentType != "" {
		return fmt.Sprintf("%s:%d", in.ContentType, *in.ContentID)
	}
	return ""
}

// updateMastery upserts the per-key record and, when the chapter is one of
// the fixed skill domains, a second record under skill:<domain> so the same
// attempt feeds both the game-specific and the domain-level view. Failures
// here never propagate; the attempt is already saved.
func (s *AttemptService) updateMastery(studentID uint, key, chapter string, percentage int, sourceID string) {
	status := scoring.StatusFor(percentage)

	keys := []string{key}
	for _, domain := range skillDomains {
		if chapter == domain {
			keys = append(keys, "skill:"+strings.ToLower(domain))
			break
		}
	}

	for _, k := range keys {
		record := &model.MasteryRecord{
			StudentID:  studentID,
			SkillKey:   k,
			Status:     string(status),
			LastScore:  percentage,
			SourceType: "attempt",
			SourceID:   sourceID,
		}
		if err := s.Mastery.Upsert(record); err != nil {
			monitoring.MasteryUpdateFailures.Inc()
			logger.Log.Error("mastery update failed, attempt kept",
				zap.Uint("studentId", studentID),
				zap.String("skillKey", k),
				zap.Error(err))
		}
	}
}
