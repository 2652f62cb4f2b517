package service

import (
	"eduquest_backend/internal/model"
	"eduquest_backend/internal/repository"
	"eduquest_backend/internal/util"
)

type ContentService struct {
	QuizRepo     *repository.QuizRepository
	GameRepo     *repository.GameRepository
	ActivityRepo *repository.ActivityRepository
}

func NewContentService(quizRepo *repository.QuizRepository, gameRepo *repository.GameRepository, activityRepo *repository.ActivityRepository) *ContentService {
	return &ContentService{
		QuizRepo:     quizRepo,
		GameRepo:     gameRepo,
		ActivityRepo: activityRepo,
	}
}

// ContentOverview is the visitor-facing read-only listing across all
// teachers.
type ContentOverview struct {
	Quizzes    []model.Quiz     `json:"quizzes"`
	Games      []model.Game     `json:"games"`
	Activities []model.Activity `json:"activities"`
}

func (s *ContentService) Overview() (*ContentOverview, error) {
	quizzes, err := s.QuizRepo.ListAll()
	if err != nil {
		return nil, err
	}
	games, err := s.GameRepo.ListAll()
	if err != nil {
		return nil, err
	}
	activities, err := s.ActivityRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return &ContentOverview{Quizzes: quizzes, Games: games, Activities: activities}, nil
}

func (s *ContentService) TeacherContent(teacherID uint) (*ContentOverview, error) {
	quizzes, err := s.QuizRepo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	games, err := s.GameRepo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	activities, err := s.ActivityRepo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	return &ContentOverview{Quizzes: quizzes, Games: games, Activities: activities}, nil
}

func (s *ContentService) CreateQuiz(quiz *model.Quiz) error {
	return s.QuizRepo.Create(quiz)
}

func (s *ContentService) UpdateQuiz(quizID, teacherID uint, updates *model.Quiz) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, err
	}
	if quiz.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}

	quiz.Title = updates.Title
	quiz.Chapter = updates.Chapter
	quiz.Questions = updates.Questions
	quiz.TimeLimit = updates.TimeLimit

	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *ContentService) DeleteQuiz(quizID, teacherID uint) error {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return err
	}
	if quiz.TeacherID != teacherID {
		return util.ErrPermissionDenied
	}
	return s.QuizRepo.Delete(quizID)
}

func (s *ContentService) CreateGame(game *model.Game) error {
	return s.GameRepo.Create(game)
}

func (s *ContentService) UpdateGame(gameID, teacherID uint, updates *model.Game) (*model.Game, error) {
	game, err := s.GameRepo.FindByID(gameID)
	if err != nil {
		return nil, err
	}
	if game.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}

	game.Title = updates.Title
	game.Chapter = updates.Chapter
	game.GameKey = updates.GameKey
	game.Difficulty = updates.Difficulty
	game.Config = updates.Config

	if err := s.GameRepo.Update(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *ContentService) DeleteGame(gameID, teacherID uint) error {
	game, err := s.GameRepo.FindByID(gameID)
	if err != nil {
		return err
	}
	if game.TeacherID != teacherID {
		return util.ErrPermissionDenied
	}
	return s.GameRepo.Delete(gameID)
}

func (s *ContentService) CreateActivity(activity *model.Activity) error {
	return s.ActivityRepo.Create(activity)
}

func (s *ContentService) UpdateActivity(activityID, teacherID uint, updates *model.Activity) (*model.Activity, error) {
	activity, err := s.ActivityRepo.FindByID(activityID)
	if err != nil {
		return nil, err
	}
	if activity.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}

	activity.Title = updates.Title
	activity.Chapter = updates.Chapter
	activity.Description = updates.Description
	activity.Body = updates.Body

	if err := s.ActivityRepo.Update(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ContentService) DeleteActivity(activityID, teacherID uint) error {
	activity, err := s.ActivityRepo.FindByID(activityID)
	if err != nil {
		return err
	}
	if activity.TeacherID != teacherID {
		return util.ErrPermissionDenied
	}
	return s.ActivityRepo.Delete(activityID)
}
