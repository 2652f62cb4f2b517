package repository

import (
	"eduquest_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Quiz{}, id).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.DB.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) ListByTeacher(teacherID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) ListAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}
