package repository

import (
	"eduquest_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

// FindOrCreate resolves a roster entry by (class, nickname), creating it on
// first sight. The unique index on the pair absorbs concurrent first
// submissions.
func (r *StudentRepository) FindOrCreate(classID uint, nickname string) (*model.Student, error) {
	var student model.Student
	err := r.DB.Where("class_id = ? AND nickname = ?", classID, nickname).First(&student).Error
	if err == nil {
		return &student, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	student = model.Student{ClassID: classID, Nickname: nickname}
	if err := r.DB.Create(&student).Error; err != nil {
		// Lost a race with another submission; re-read the winner.
		var existing model.Student
		if ferr := r.DB.Where("class_id = ? AND nickname = ?", classID, nickname).First(&existing).Error; ferr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.DB.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) ListByClass(classID uint) ([]model.Student, error) {
	var students []model.Student
	err := r.DB.Where("class_id = ?", classID).Order("nickname ASC").Find(&students).Error
	return students, err
}

func (r *StudentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Student{}, id).Error
}
