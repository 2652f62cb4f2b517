package repository

import (
	"eduquest_backend/internal/model"

	"gorm.io/gorm"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) Create(class *model.Class) error {
	return r.DB.Create(class).Error
}

func (r *ClassRepository) Update(class *model.Class) error {
	return r.DB.Save(class).Error
}

func (r *ClassRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Class{}, id).Error
}

func (r *ClassRepository) FindByID(id uint) (*model.Class, error) {
	var class model.Class
	if err := r.DB.First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) FindByCode(code string) (*model.Class, error) {
	var class model.Class
	if err := r.DB.Where("code = ?", code).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) ListByTeacher(teacherID uint) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&classes).Error
	return classes, err
}
