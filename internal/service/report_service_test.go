package service_test

import (
	"fmt"
	"testing"
	"time"

	"eduquest_backend/internal/model"
	"eduquest_backend/internal/service"
)

type fakeAttemptSource struct {
	attempts map[string][]model.Attempt
	hasTable bool
}

func (f *fakeAttemptSource) ListByClassCode(classCode string) ([]model.Attempt, error) {
	return f.attempts[classCode], nil
}

func (f *fakeAttemptSource) HasAttemptTable() bool {
	return f.hasTable
}

type fakeClassSource struct {
	classes []model.Class
}

func (f *fakeClassSource) FindByID(id uint) (*model.Class, error) {
	for i := range f.classes {
		if f.classes[i].ID == id {
			return &f.classes[i], nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (f *fakeClassSource) ListByTeacher(teacherID uint) ([]model.Class, error) {
	var out []model.Class
	for _, c := range f.classes {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out, nil
}

func attemptAt(nickname string, percentage int, completedAt time.Time) model.Attempt {
	return model.Attempt{
		Nickname:    nickname,
		ClassCode:   "ABC123",
		Percentage:  percentage,
		CompletedAt: completedAt,
	}
}

func TestWeekStart(t *testing.T) {
	loc := time.Local
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"saturday maps to itself",
			time.Date(2026, 8, 22, 15, 30, 0, 0, loc), // Saturday
			time.Date(2026, 8, 22, 0, 0, 0, 0, loc),
		},
		{
			"sunday goes back one day",
			time.Date(2026, 8, 23, 9, 0, 0, 0, loc), // Sunday
			time.Date(2026, 8, 22, 0, 0, 0, 0, loc),
		},
		{
			"friday goes back six days",
			time.Date(2026, 8, 28, 23, 59, 0, 0, loc), // Friday
			time.Date(2026, 8, 22, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.WeekStart(tt.now); !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestComputeClassStats_Empty(t *testing.T) {
	stats := service.ComputeClassStats(nil, time.Now())

	if stats.WeeklyAttempts != 0 || stats.TotalAttempts != 0 {
		t.Error("empty scope must yield zero counts, not an error")
	}
	if stats.AveragePercentage != 0 {
		t.Errorf("average = %f, want 0", stats.AveragePercentage)
	}
	if len(stats.Trends) != 0 {
		t.Errorf("trends = %v, want empty", stats.Trends)
	}
}

func TestComputeClassStats_TrendDelta(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local) // Wednesday
	// Newest first: mia scored 40 after a 90.
	attempts := []model.Attempt{
		attemptAt("mia", 40, now.Add(-1*time.Hour)),
		attemptAt("mia", 90, now.Add(-2*time.Hour)),
	}

	stats := service.ComputeClassStats(attempts, now)

	if len(stats.Trends) != 1 {
		t.Fatalf("trends = %d entries, want 1", len(stats.Trends))
	}
	trend := stats.Trends[0]
	if trend.Latest != 40 || trend.Previous != 90 || trend.Delta != -50 {
		t.Errorf("trend = %+v, want latest 40, previous 90, delta -50", trend)
	}
}

func TestComputeClassStats_SingleAttemptZeroDelta(t *testing.T) {
	now := time.Now()
	stats := service.ComputeClassStats([]model.Attempt{attemptAt("leo", 75, now)}, now)

	if stats.Trends[0].Delta != 0 {
		t.Errorf("delta with one attempt = %d, want 0", stats.Trends[0].Delta)
	}
}

func TestComputeClassStats_WeeklyWindow(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local) // Wednesday
	weekStart := service.WeekStart(now)

	attempts := []model.Attempt{
		attemptAt("mia", 80, weekStart.Add(2*time.Hour)),     // this week
		attemptAt("leo", 70, weekStart),                      // boundary counts
		attemptAt("zoe", 60, weekStart.Add(-1*time.Minute)),  // last week
		attemptAt("kai", 50, weekStart.AddDate(0, 0, -10)),   // older
	}

	stats := service.ComputeClassStats(attempts, now)
	if stats.WeeklyAttempts != 2 {
		t.Errorf("weeklyAttempts = %d, want 2", stats.WeeklyAttempts)
	}
	if stats.TotalAttempts != 4 {
		t.Errorf("totalAttempts = %d, want 4", stats.TotalAttempts)
	}
}

func TestComputeClassStats_LearnerBands(t *testing.T) {
	now := time.Now()
	attempts := []model.Attempt{
		attemptAt("ace", 95, now), // advanced
		attemptAt("ace", 85, now),
		attemptAt("mid", 70, now), // neither band
		attemptAt("low", 55, now), // needs support
		attemptAt("low", 30, now),
	}

	stats := service.ComputeClassStats(attempts, now)
	if stats.AdvancedCount != 1 {
		t.Errorf("advancedCount = %d, want 1", stats.AdvancedCount)
	}
	if stats.NeedsSupportCount != 1 {
		t.Errorf("needsSupportCount = %d, want 1", stats.NeedsSupportCount)
	}
}

func TestComputeClassStats_TrendCap(t *testing.T) {
	now := time.Now()
	var attempts []model.Attempt
	for i := 0; i < 14; i++ {
		attempts = append(attempts, attemptAt(fmt.Sprintf("learner-%02d", i), 50+i, now))
	}

	stats := service.ComputeClassStats(attempts, now)
	if len(stats.Trends) != 10 {
		t.Errorf("trends = %d entries, want capped at 10", len(stats.Trends))
	}
	// Most recently active learners come first.
	if stats.Trends[0].Nickname != "learner-00" {
		t.Errorf("first trend = %s, want learner-00", stats.Trends[0].Nickname)
	}
}

func TestGetClassStats_MissingTableYieldsZeroStats(t *testing.T) {
	svc := service.NewReportService(
		&fakeAttemptSource{hasTable: false},
		&fakeClassSource{},
	)

	stats, err := svc.GetClassStats("ABC123")
	if err != nil {
		t.Fatalf("missing table must not error: %v", err)
	}
	if stats.WeeklyAttempts != 0 || stats.AdvancedCount != 0 {
		t.Errorf("stats = %+v, want all zero", stats)
	}
}

func TestGetTeacherStats(t *testing.T) {
	classA := model.Class{TeacherID: 1, Name: "1A", Code: "AAA111"}
	classA.ID = 1
	classB := model.Class{TeacherID: 1, Name: "1B", Code: "BBB222"}
	classB.ID = 2

	now := time.Now()
	svc := service.NewReportService(
		&fakeAttemptSource{
			hasTable: true,
			attempts: map[string][]model.Attempt{
				"AAA111": {attemptAt("mia", 90, now)},
			},
		},
		&fakeClassSource{classes: []model.Class{classA, classB}},
	)

	stats, err := svc.GetTeacherStats(1)
	if err != nil {
		t.Fatalf("GetTeacherStats: %v", err)
	}
	if len(stats.Classes) != 2 {
		t.Fatalf("classes = %d, want 2", len(stats.Classes))
	}
	if stats.Classes[0].TotalAttempts != 1 || stats.Classes[1].TotalAttempts != 0 {
		t.Errorf("per-class attempt counts wrong: %+v", stats.Classes)
	}
}
