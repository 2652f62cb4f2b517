package repository

import (
	"eduquest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShareRepository struct {
	DB *gorm.DB
}

func NewShareRepository(db *gorm.DB) *ShareRepository {
	return &ShareRepository{DB: db}
}

// Upsert writes the share row, relying on the (class, type, id) unique
// index so repeated shares of the same content converge on one row.
func (r *ShareRepository) Upsert(share *model.ContentShare) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "class_id"},
			{Name: "content_type"},
			{Name: "content_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"visible", "teacher_id", "updated_at"}),
	}).Create(share).Error
}

func (r *ShareRepository) Find(classID uint, contentType model.ContentType, contentID uint) (*model.ContentShare, error) {
	var share model.ContentShare
	err := r.DB.Where("class_id = ? AND content_type = ? AND content_id = ?",
		classID, contentType, contentID).First(&share).Error
	if err != nil {
		return nil, err
	}
	return &share, nil
}

func (r *ShareRepository) ListByClass(classID uint, visibleOnly bool) ([]model.ContentShare, error) {
	query := r.DB.Where("class_id = ?", classID)
	if visibleOnly {
		query = query.Where("visible = ?", true)
	}
	var shares []model.ContentShare
	err := query.Order("created_at DESC").Find(&shares).Error
	return shares, err
}

func (r *ShareRepository) ListByTeacher(teacherID uint) ([]model.ContentShare, error) {
	var shares []model.ContentShare
	err := r.DB.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&shares).Error
	return shares, err
}

func (r *ShareRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ContentShare{}, id).Error
}
