package service

import (
	"errors"

	"eduquest_backend/internal/model"
	"eduquest_backend/internal/repository"
	"eduquest_backend/internal/util"

	"gorm.io/gorm"
)

// ShareService is the server-side source of truth for which content a
// class sees. Shares used to live in the client's local storage for some
// content types; the visibility flag is a correctness gate, so it is
// persisted here for all of them.
type ShareService struct {
	ShareRepo    *repository.ShareRepository
	ClassRepo    *repository.ClassRepository
	QuizRepo     *repository.QuizRepository
	GameRepo     *repository.GameRepository
	ActivityRepo *repository.ActivityRepository
}

func NewShareService(
	shareRepo *repository.ShareRepository,
	classRepo *repository.ClassRepository,
	quizRepo *repository.QuizRepository,
	gameRepo *repository.GameRepository,
	activityRepo *repository.ActivityRepository,
) *ShareService {
	return &ShareService{
		ShareRepo:    shareRepo,
		ClassRepo:    classRepo,
		QuizRepo:     quizRepo,
		GameRepo:     gameRepo,
		ActivityRepo: activityRepo,
	}
}

// Share makes content visible to a class. The teacher must own both the
// class and the content.
func (s *ShareService) Share(teacherID, classID uint, contentType model.ContentType, contentID uint) (*model.ContentShare, error) {
	class, err := s.ClassRepo.FindByID(classID)
	if err != nil {
		return nil, err
	}
	if class.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}

	if err := s.checkContentOwnership(teacherID, contentType, contentID); err != nil {
		return nil, err
	}

	share := &model.ContentShare{
		TeacherID:   teacherID,
		ClassID:     classID,
		ContentType: contentType,
		ContentID:   contentID,
		Visible:     true,
	}
	if err := s.ShareRepo.Upsert(share); err != nil {
		return nil, err
	}
	return share, nil
}

func (s *ShareService) SetVisibility(teacherID, classID uint, contentType model.ContentType, contentID uint, visible bool) error {
	share, err := s.ShareRepo.Find(classID, contentType, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrShareNotFound
		}
		return err
	}
	if share.TeacherID != teacherID {
		return util.ErrPermissionDenied
	}

	share.Visible = visible
	return s.ShareRepo.Upsert(share)
}

func (s *ShareService) Unshare(teacherID, classID uint, contentType model.ContentType, contentID uint) error {
	share, err := s.ShareRepo.Find(classID, contentType, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrShareNotFound
		}
		return err
	}
	if share.TeacherID != teacherID {
		return util.ErrPermissionDenied
	}
	return s.ShareRepo.Delete(share.ID)
}

func (s *ShareService) ListForTeacher(teacherID uint) ([]model.ContentShare, error) {
	return s.ShareRepo.ListByTeacher(teacherID)
}

// SharedContent resolves a class join code to its visible shared content.
// This is the learner-facing read path; no authentication beyond knowing
// the code.
type SharedContent struct {
	Class      string           `json:"class"`
	Quizzes    []model.Quiz     `json:"quizzes"`
	Games      []model.Game     `json:"games"`
	Activities []model.Activity `json:"activities"`
}

func (s *ShareService) SharedContentForCode(classCode string) (*SharedContent, error) {
	class, err := s.ClassRepo.FindByCode(classCode)
	if err != nil {
		return nil, err
	}

	shares, err := s.ShareRepo.ListByClass(class.ID, true)
	if err != nil {
		return nil, err
	}

	out := &SharedContent{
		Class:      class.Name,
		Quizzes:    []model.Quiz{},
		Games:      []model.Game{},
		Activities: []model.Activity{},
	}

	for _, share := range shares {
		switch share.ContentType {
		case model.ContentQuiz:
			if quiz, err := s.QuizRepo.FindByID(share.ContentID); err == nil {
				out.Quizzes = append(out.Quizzes, *quiz)
			}
		case model.ContentGame:
			if game, err := s.GameRepo.FindByID(share.ContentID); err == nil {
				out.Games = append(out.Games, *game)
			}
		case model.ContentActivity:
			if activity, err := s.ActivityRepo.FindByID(share.ContentID); err == nil {
				out.Activities = append(out.Activities, *activity)
			}
		}
	}

	return out, nil
}

func (s *ShareService) checkContentOwnership(teacherID uint, contentType model.ContentType, contentID uint) error {
	switch contentType {
	case model.ContentQuiz:
		quiz, err := s.QuizRepo.FindByID(contentID)
		if err != nil {
			return err
		}
		if quiz.TeacherID != teacherID {
			return util.ErrPermissionDenied
		}
	case model.ContentGame:
		game, err := s.GameRepo.FindByID(contentID)
		if err != nil {
			return err
		}
		if game.TeacherID != teacherID {
			return util.ErrPermissionDenied
		}
	case model.ContentActivity:
		activity, err := s.ActivityRepo.FindByID(contentID)
		if err != nil {
			return err
		}
		if activity.TeacherID != teacherID {
			return util.ErrPermissionDenied
		}
	default:
		return util.ErrContentNotFound
	}
	return nil
}
