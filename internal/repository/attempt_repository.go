package repository

import (
	"eduquest_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.Attempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByID(id string) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.DB.Where("id = ?", id).First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// ListByClassCode returns every attempt in scope, newest first. Report
// reads are point-in-time rescans; nothing here is cached.
func (r *AttemptRepository) ListByClassCode(classCode string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("class_code = ?", classCode).
		Order("completed_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) ListByClassAndNickname(classCode, nickname string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("class_code = ? AND nickname = ?", classCode, nickname).
		Order("completed_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) ListByStudent(studentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("student_id = ?", studentID).
		Order("completed_at DESC").Find(&attempts).Error
	return attempts, err
}

// HasAttemptTable reports whether the attempts table exists. Some
// deployments run without the optional reporting migrations; readers
// degrade to zero-valued stats instead of failing.
func (r *AttemptRepository) HasAttemptTable() bool {
	return r.DB.Migrator().HasTable(&model.Attempt{})
}
