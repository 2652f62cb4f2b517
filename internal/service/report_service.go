package service

import (
	"time"

	"eduquest_backend/internal/model"
	"eduquest_backend/internal/scoring"
	"eduquest_backend/internal/util"
)

// AttemptSource is the read side of the attempt table. Every report call
// rescans the table in scope; nothing is cached.
type AttemptSource interface {
	ListByClassCode(classCode string) ([]model.Attempt, error)
	HasAttemptTable() bool
}

type ClassSource interface {
	FindByID(id uint) (*model.Class, error)
	ListByTeacher(teacherID uint) ([]model.Class, error)
}

const maxTrendLearners = 10

type ReportService struct {
	Attempts AttemptSource
	Classes  ClassSource
}

func NewReportService(attempts AttemptSource, classes ClassSource) *ReportService {
	return &ReportService{Attempts: attempts, Classes: classes}
}

type LearnerTrend struct {
	Nickname string `json:"nickname"`
	Latest   int    `json:"latest"`
	Previous int    `json:"previous"`
	Delta    int    `json:"delta"`
	Attempts int    `json:"attempts"`
}

type ClassStats struct {
	ClassCode         string         `json:"classCode"`
	TotalAttempts     int            `json:"totalAttempts"`
	WeeklyAttempts    int            `json:"weeklyAttempts"`
	AveragePercentage float64        `json:"averagePercentage"`
	AdvancedCount     int            `json:"advancedCount"`
	NeedsSupportCount int            `json:"needsSupportCount"`
	Trends            []LearnerTrend `json:"trends"`
}

type TeacherStats struct {
	Classes []ClassStats `json:"classes"`
}

// GetClassStats builds the dashboard numbers for one class. A missing
// attempt table yields zero-valued stats rather than an error; some
// deployments never ran the optional reporting migrations.
func (s *ReportService) GetClassStats(classCode string) (*ClassStats, error) {
	if !s.Attempts.HasAttemptTable() {
		return &ClassStats{ClassCode: classCode}, nil
	}

	attempts, err := s.Attempts.ListByClassCode(classCode)
	if err != nil {
		return nil, err
	}

	stats := ComputeClassStats(attempts, time.Now())
	stats.ClassCode = classCode
	return &stats, nil
}

// ClassStatsForUser resolves the class and enforces scope: teachers see
// only their own classes, visitor reviewers and admins see any.
func (s *ReportService) ClassStatsForUser(classID, userID uint, role model.UserRole) (*ClassStats, error) {
	class, err := s.Classes.FindByID(classID)
	if err != nil {
		return nil, err
	}
	if role == model.Teacher && class.TeacherID != userID {
		return nil, util.ErrPermissionDenied
	}
	return s.GetClassStats(class.Code)
}

// ClassAttemptsForUser returns the raw attempt rows for a class, same
// scoping rules as ClassStatsForUser.
func (s *ReportService) ClassAttemptsForUser(classID, userID uint, role model.UserRole) ([]model.Attempt, error) {
	class, err := s.Classes.FindByID(classID)
	if err != nil {
		return nil, err
	}
	if role == model.Teacher && class.TeacherID != userID {
		return nil, util.ErrPermissionDenied
	}
	if !s.Attempts.HasAttemptTable() {
		return []model.Attempt{}, nil
	}
	return s.Attempts.ListByClassCode(class.Code)
}

func (s *ReportService) GetTeacherStats(teacherID uint) (*TeacherStats, error) {
	classes, err := s.Classes.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}

	out := &TeacherStats{Classes: []ClassStats{}}
	for _, class := range classes {
		stats, err := s.GetClassStats(class.Code)
		if err != nil {
			return nil, err
		}
		out.Classes = append(out.Classes, *stats)
	}
	return out, nil
}

// WeekStart returns the most recent Saturday 00:00 in now's location. The
// reporting week runs Saturday to Friday.
func WeekStart(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	daysSinceSaturday := (int(now.Weekday()) - int(time.Saturday) + 7) % 7
	return midnight.AddDate(0, 0, -daysSinceSaturday)
}

// ComputeClassStats derives the full stat block from one scan of the
// attempts in scope. attempts must be ordered newest first, which is how
// the repository returns them.
func ComputeClassStats(attempts []model.Attempt, now time.Time) ClassStats {
	stats := ClassStats{Trends: []LearnerTrend{}}
	if len(attempts) == 0 {
		return stats
	}

	weekStart := WeekStart(now)
	sum := 0
	bestByNickname := make(map[string]int)
	var nicknameOrder []string
	latestTwo := make(map[string][]int)
	attemptCounts := make(map[string]int)

	for _, a := range attempts {
		sum += a.Percentage
		if !a.CompletedAt.Before(weekStart) {
			stats.WeeklyAttempts++
		}

		if _, seen := bestByNickname[a.Nickname]; !seen {
			nicknameOrder = append(nicknameOrder, a.Nickname)
			bestByNickname[a.Nickname] = a.Percentage
		} else if a.Percentage > bestByNickname[a.Nickname] {
			bestByNickname[a.Nickname] = a.Percentage
		}

		attemptCounts[a.Nickname]++
		if len(latestTwo[a.Nickname]) < 2 {
			latestTwo[a.Nickname] = append(latestTwo[a.Nickname], a.Percentage)
		}
	}

	stats.TotalAttempts = len(attempts)
	stats.AveragePercentage = float64(sum) / float64(len(attempts))

	for _, best := range bestByNickname {
		if best >= scoring.MasteryThreshold {
			stats.AdvancedCount++
		}
		if best < 60 {
			stats.NeedsSupportCount++
		}
	}

	// Trend delta over the latest two attempts per learner, first-seen
	// (most recently active) order, capped at ten learners.
	for _, nickname := range nicknameOrder {
		if len(stats.Trends) == maxTrendLearners {
			break
		}
		recent := latestTwo[nickname]
		trend := LearnerTrend{
			Nickname: nickname,
			Latest:   recent[0],
			Attempts: attemptCounts[nickname],
		}
		if len(recent) == 2 {
			trend.Previous = recent[1]
			trend.Delta = recent[0] - recent[1]
		}
		stats.Trends = append(stats.Trends, trend)
	}

	return stats
}
