package repository

import (
	"eduquest_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(activity *model.Activity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) Update(activity *model.Activity) error {
	return r.DB.Save(activity).Error
}

func (r *ActivityRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Activity{}, id).Error
}

func (r *ActivityRepository) FindByID(id uint) (*model.Activity, error) {
	var activity model.Activity
	if err := r.DB.First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) ListByTeacher(teacherID uint) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) ListAll() ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.Order("created_at DESC").Find(&activities).Error
	return activities, err
}
