package repository

import (
	"eduquest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MasteryRepository struct {
	DB *gorm.DB
}

func NewMasteryRepository(db *gorm.DB) *MasteryRepository {
	return &MasteryRepository{DB: db}
}

// Upsert overwrites the (student, key) record in place. The unique index
// makes concurrent duplicate submissions converge last-write-wins instead
// of producing duplicate rows.
func (r *MasteryRepository) Upsert(record *model.MasteryRecord) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_id"},
			{Name: "skill_key"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"status", "last_score", "source_type", "source_id", "updated_at"}),
	}).Create(record).Error
}

func (r *MasteryRepository) Find(studentID uint, skillKey string) (*model.MasteryRecord, error) {
	var record model.MasteryRecord
	err := r.DB.Where("student_id = ? AND skill_key = ?", studentID, skillKey).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *MasteryRepository) ListByStudent(studentID uint) ([]model.MasteryRecord, error) {
	var records []model.MasteryRecord
	err := r.DB.Where("student_id = ?", studentID).
		Order("skill_key ASC").Find(&records).Error
	return records, err
}
