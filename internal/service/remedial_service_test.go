package service_test

import (
	"reflect"
	"testing"

	"eduquest_backend/internal/catalog"
	"eduquest_backend/internal/model"
	"eduquest_backend/internal/scoring"
	"eduquest_backend/internal/service"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Quizzes: []catalog.Item{
			{ID: "q-read-1", Type: "quiz", Chapter: "Reading", Title: "Letter sounds", Difficulty: 1, Remedial: true},
			{ID: "q-read-2", Type: "quiz", Chapter: "Reading", Title: "Sight words", Difficulty: 2, Remedial: true},
			{ID: "q-read-3", Type: "quiz", Chapter: "Reading", Title: "Short stories", Difficulty: 3, Remedial: false},
			{ID: "q-num-1", Type: "quiz", Chapter: "Numbers", Title: "Counting", Difficulty: 1, Remedial: true},
		},
		Games: []catalog.Item{
			{ID: "g-shape-1", Type: "game", Chapter: "Shapes", Title: "Shape sorter", Difficulty: 1, Remedial: true},
		},
	}
}

type fakeStudentAttempts struct {
	attempts []model.Attempt
}

func (f *fakeStudentAttempts) ListByStudent(studentID uint) ([]model.Attempt, error) {
	return f.attempts, nil
}

func verdictFor(t *testing.T, verdicts []service.ChapterVerdict, chapter string) service.ChapterVerdict {
	t.Helper()
	for _, v := range verdicts {
		if v.Chapter == chapter {
			return v
		}
	}
	t.Fatalf("no verdict for chapter %q in %+v", chapter, verdicts)
	return service.ChapterVerdict{}
}

func TestBuildPlan_AverageAtSupportBoundary(t *testing.T) {
	svc := service.NewRemedialService(testCatalog(), &fakeStudentAttempts{}, nil)

	verdicts := svc.BuildPlan([]service.ChapterScore{
		{Chapter: "Reading", Score: 40},
		{Chapter: "Reading", Score: 60},
	})

	reading := verdictFor(t, verdicts, "Reading")
	if reading.AverageScore != 50 {
		t.Errorf("average = %d, want 50", reading.AverageScore)
	}
	if reading.Status != scoring.StatusSupport {
		t.Errorf("status = %s, want needs_support (boundary goes to higher band)", reading.Status)
	}

	// Support band assigns remedial content up to difficulty 2.
	if len(reading.Content) != 2 {
		t.Fatalf("content = %d items, want 2", len(reading.Content))
	}
	for _, item := range reading.Content {
		if !item.Remedial || item.Difficulty > 2 {
			t.Errorf("item %s: remedial=%v difficulty=%d outside support-band filter", item.ID, item.Remedial, item.Difficulty)
		}
	}
}

func TestBuildPlan_UrgentBandDifficultyOne(t *testing.T) {
	svc := service.NewRemedialService(testCatalog(), &fakeStudentAttempts{}, nil)

	verdicts := svc.BuildPlan([]service.ChapterScore{{Chapter: "Reading", Score: 30}})

	reading := verdictFor(t, verdicts, "Reading")
	if reading.Status != scoring.StatusUrgent {
		t.Fatalf("status = %s, want needs_urgent_remediation", reading.Status)
	}
	if len(reading.Content) != 1 || reading.Content[0].ID != "q-read-1" {
		t.Errorf("urgent band content = %+v, want only the difficulty-1 item", reading.Content)
	}
}

func TestBuildPlan_MasteredBoundaryAssignsNothing(t *testing.T) {
	svc := service.NewRemedialService(testCatalog(), &fakeStudentAttempts{}, nil)

	verdicts := svc.BuildPlan([]service.ChapterScore{{Chapter: "Reading", Score: 70}})

	reading := verdictFor(t, verdicts, "Reading")
	if reading.Status != scoring.StatusMastered {
		t.Errorf("status at 70 = %s, want mastered", reading.Status)
	}
	if len(reading.Content) != 0 {
		t.Errorf("mastered chapter got content assigned: %+v", reading.Content)
	}
}

func TestBuildPlan_UnassessedCatalogChapters(t *testing.T) {
	svc := service.NewRemedialService(testCatalog(), &fakeStudentAttempts{}, nil)

	verdicts := svc.BuildPlan([]service.ChapterScore{{Chapter: "Reading", Score: 80}})

	for _, chapter := range []string{"Numbers", "Shapes"} {
		v := verdictFor(t, verdicts, chapter)
		if v.Assessed || v.Status != scoring.StatusNotAssessed {
			t.Errorf("%s: %+v, want unassessed with no content", chapter, v)
		}
		if len(v.Content) != 0 {
			t.Errorf("%s: unassessed chapter got content", chapter)
		}
	}
}

func TestBuildPlan_Pure(t *testing.T) {
	svc := service.NewRemedialService(testCatalog(), &fakeStudentAttempts{}, nil)

	input := []service.ChapterScore{
		{Chapter: "Reading", Score: 45},
		{Chapter: "Numbers", Score: 88},
	}

	first := svc.BuildPlan(input)
	second := svc.BuildPlan(input)

	if !reflect.DeepEqual(first, second) {
		t.Error("BuildPlan is not deterministic for identical input")
	}
}

func TestBuildPlan_ScoredChapterOutsideCatalog(t *testing.T) {
	svc := service.NewRemedialService(testCatalog(), &fakeStudentAttempts{}, nil)

	verdicts := svc.BuildPlan([]service.ChapterScore{{Chapter: "Music", Score: 20}})

	music := verdictFor(t, verdicts, "Music")
	if music.Status != scoring.StatusUrgent {
		t.Errorf("status = %s, want urgent", music.Status)
	}
	if len(music.Content) != 0 {
		t.Errorf("no catalog content exists for Music, got %+v", music.Content)
	}
}

func TestPlanForStudent_UsesAttemptPercentages(t *testing.T) {
	attempts := &fakeStudentAttempts{attempts: []model.Attempt{
		{Nickname: "mia", Chapter: "Reading", ContentKey: "quiz:1", Percentage: 40},
		{Nickname: "mia", Chapter: "Reading", ContentKey: "quiz:2", Percentage: 60},
		{Nickname: "mia", Chapter: "", ContentKey: "quiz:3", Percentage: 10}, // no chapter, skipped
	}}
	svc := service.NewRemedialService(testCatalog(), attempts, nil)

	verdicts, err := svc.PlanForStudent(42)
	if err != nil {
		t.Fatalf("PlanForStudent: %v", err)
	}

	reading := verdictFor(t, verdicts, "Reading")
	if reading.AverageScore != 50 || reading.Status != scoring.StatusSupport {
		t.Errorf("reading verdict = %+v, want avg 50 needs_support", reading)
	}
}
