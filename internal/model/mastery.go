package model

// MasteryRecord holds the latest known proficiency for a learner on a skill
// or game key. At most one row per (student, key); each new attempt for the
// same key overwrites status and score, no history kept. The unique index is
// what makes concurrent duplicate submissions converge last-write-wins.
// swagger:model MasteryRecord
type MasteryRecord struct {
	BaseModel
	StudentID  uint   `gorm:"index:idx_student_skill,unique;not null" json:"studentId"`
	SkillKey   string `gorm:"size:120;index:idx_student_skill,unique;not null" json:"skillKey"`
	Status     string `gorm:"size:20;not null" json:"status"`
	LastScore  int    `gorm:"not null" json:"lastScore"`
	SourceType string `gorm:"size:20" json:"sourceType"`
	SourceID   string `gorm:"size:36" json:"sourceId"`
}

func (MasteryRecord) TableName() string {
	return "mastery_records"
}
