package service_test

import (
	"errors"
	"fmt"
	"testing"

	"eduquest_backend/internal/model"
	"eduquest_backend/internal/service"

	"gorm.io/gorm"
)

type fakeAttemptStore struct {
	created []*model.Attempt
	err     error
}

func (f *fakeAttemptStore) Create(attempt *model.Attempt) error {
	if f.err != nil {
		return f.err
	}
	attempt.ID = fmt.Sprintf("attempt-%d", len(f.created)+1)
	f.created = append(f.created, attempt)
	return nil
}

type fakeClassFinder struct {
	classes map[string]*model.Class
}

func (f *fakeClassFinder) FindByCode(code string) (*model.Class, error) {
	if class, ok := f.classes[code]; ok {
		return class, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeRoster struct {
	nextID   uint
	students map[string]*model.Student
}

func (f *fakeRoster) FindOrCreate(classID uint, nickname string) (*model.Student, error) {
	key := fmt.Sprintf("%d|%s", classID, nickname)
	if f.students == nil {
		f.students = make(map[string]*model.Student)
	}
	if s, ok := f.students[key]; ok {
		return s, nil
	}
	f.nextID++
	s := &model.Student{ClassID: classID, Nickname: nickname}
	s.ID = f.nextID
	f.students[key] = s
	return s, nil
}

type fakeMasteryStore struct {
	records map[string]*model.MasteryRecord
	upserts int
	err     error
}

func (f *fakeMasteryStore) Upsert(record *model.MasteryRecord) error {
	if f.err != nil {
		return f.err
	}
	if f.records == nil {
		f.records = make(map[string]*model.MasteryRecord)
	}
	f.upserts++
	f.records[fmt.Sprintf("%d|%s", record.StudentID, record.SkillKey)] = record
	return nil
}

func newAttemptFixture() (*service.AttemptService, *fakeAttemptStore, *fakeMasteryStore) {
	class := &model.Class{TeacherID: 1, Name: "1A", Code: "ABC123"}
	class.ID = 7

	attempts := &fakeAttemptStore{}
	mastery := &fakeMasteryStore{}
	svc := service.NewAttemptService(
		attempts,
		&fakeClassFinder{classes: map[string]*model.Class{"ABC123": class}},
		&fakeRoster{},
		mastery,
	)
	return svc, attempts, mastery
}

func submit(nickname, classCode, key, chapter string, score, total int) *service.SubmitAttemptInput {
	return &service.SubmitAttemptInput{
		Nickname:   nickname,
		ClassCode:  classCode,
		ContentKey: key,
		Chapter:    chapter,
		Score:      score,
		Total:      total,
		TimeSpent:  30,
	}
}

func TestRecordAttempt_DerivesPercentage(t *testing.T) {
	svc, attempts, _ := newAttemptFixture()

	got, err := svc.RecordAttempt(submit("mia", "ABC123", "game:word-match", "Reading", 1, 3))
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	if got.Percentage != 33 {
		t.Errorf("percentage = %d, want 33", got.Percentage)
	}
	if len(attempts.created) != 1 {
		t.Fatalf("created %d attempts, want 1", len(attempts.created))
	}
	if attempts.created[0].StudentID == nil {
		t.Error("expected roster-resolved student id")
	}
}

func TestRecordAttempt_UnknownClassIsOrphaned(t *testing.T) {
	svc, attempts, mastery := newAttemptFixture()

	got, err := svc.RecordAttempt(submit("mia", "NOPE99", "game:word-match", "Reading", 8, 10))
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	if got.ClassID != nil || got.StudentID != nil {
		t.Error("orphaned attempt should have no class or student id")
	}
	if len(attempts.created) != 1 {
		t.Errorf("orphaned attempt must still be persisted")
	}
	if mastery.upserts != 0 {
		t.Errorf("orphaned attempt must not touch mastery, got %d upserts", mastery.upserts)
	}
}

func TestRecordAttempt_MasteryFlipsWithoutHysteresis(t *testing.T) {
	svc, _, mastery := newAttemptFixture()

	if _, err := svc.RecordAttempt(submit("mia", "ABC123", "game:sum-safari", "Shapes", 9, 10)); err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	record := mastery.records["1|game:sum-safari"]
	if record == nil || record.Status != "mastered" {
		t.Fatalf("after 90%%: record = %+v, want mastered", record)
	}

	if _, err := svc.RecordAttempt(submit("mia", "ABC123", "game:sum-safari", "Shapes", 4, 10)); err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	record = mastery.records["1|game:sum-safari"]
	if record.Status != "not_mastered" || record.LastScore != 40 {
		t.Errorf("after 40%%: status=%s lastScore=%d, want not_mastered/40", record.Status, record.LastScore)
	}

	// Still exactly one record for the key.
	if len(mastery.records) != 1 {
		t.Errorf("expected 1 mastery record, got %d", len(mastery.records))
	}
}

func TestRecordAttempt_DomainChapterDualWrite(t *testing.T) {
	svc, _, mastery := newAttemptFixture()

	if _, err := svc.RecordAttempt(submit("mia", "ABC123", "game:word-match", "Reading", 9, 10)); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	if len(mastery.records) != 2 {
		t.Fatalf("expected game + domain records, got %d", len(mastery.records))
	}
	domain := mastery.records["1|skill:reading"]
	if domain == nil {
		t.Fatal("missing skill:reading record")
	}
	if domain.LastScore != 90 || domain.Status != "mastered" {
		t.Errorf("domain record = %+v, want score 90 mastered", domain)
	}
}

func TestRecordAttempt_NonDomainChapterSingleWrite(t *testing.T) {
	svc, _, mastery := newAttemptFixture()

	if _, err := svc.RecordAttempt(submit("mia", "ABC123", "game:shape-sorter", "Shapes", 9, 10)); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if len(mastery.records) != 1 {
		t.Errorf("non-domain chapter should write one record, got %d", len(mastery.records))
	}
}

func TestRecordAttempt_MasteryFailureIsSwallowed(t *testing.T) {
	svc, attempts, mastery := newAttemptFixture()
	mastery.err = errors.New("mastery table missing")

	got, err := svc.RecordAttempt(submit("mia", "ABC123", "game:word-match", "Reading", 9, 10))
	if err != nil {
		t.Fatalf("mastery failure must not fail the submission: %v", err)
	}
	if got == nil || len(attempts.created) != 1 {
		t.Error("attempt must be persisted despite mastery failure")
	}
}

func TestRecordAttempt_Validation(t *testing.T) {
	svc, _, _ := newAttemptFixture()

	tests := []struct {
		name string
		in   *service.SubmitAttemptInput
	}{
		{"missing nickname", submit("", "ABC123", "k", "", 1, 2)},
		{"missing class code", submit("mia", "", "k", "", 1, 2)},
		{"zero total", submit("mia", "ABC123", "k", "", 1, 0)},
		{"negative score", submit("mia", "ABC123", "k", "", -1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.RecordAttempt(tt.in); !errors.Is(err, service.ErrInvalidAttempt) {
				t.Errorf("got %v, want ErrInvalidAttempt", err)
			}
		})
	}
}

func TestRecordAttempt_NoContentKeySkipsMastery(t *testing.T) {
	svc, _, mastery := newAttemptFixture()

	if _, err := svc.RecordAttempt(submit("mia", "ABC123", "", "", 1, 2)); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if mastery.upserts != 0 {
		t.Errorf("keyless attempt should skip mastery, got %d upserts", mastery.upserts)
	}
}
