package model

import "time"

// Attempt is one learner submission of a quiz or game. Immutable once
// created; never updated or deleted by the aggregation path. ClassID is
// nullable: attempts with an unknown class code are kept as orphans.
// swagger:model Attempt
type Attempt struct {
	UUIDBase
	Nickname    string      `gorm:"size:100;index;not null" json:"nickname"`
	ClassCode   string      `gorm:"size:20;index;not null" json:"classCode"`
	ClassID     *uint       `gorm:"index" json:"classId,omitempty"`
	StudentID   *uint       `gorm:"index" json:"studentId,omitempty"`
	ContentType ContentType `gorm:"size:20" json:"contentType"`
	ContentID   *uint       `json:"contentId,omitempty"`
	ContentKey  string      `gorm:"size:120;index" json:"contentKey"`
	Chapter     string      `gorm:"size:100" json:"chapter"`
	Answers     string      `gorm:"type:json" json:"answers"`
	Score       int         `gorm:"not null" json:"score"`
	Total       int         `gorm:"not null" json:"total"`
	Percentage  int         `gorm:"not null;index" json:"percentage"`
	TimeSpent   int         `gorm:"column:time_spent_seconds" json:"timeSpentSeconds"`
	CompletedAt time.Time   `json:"completedAt"`
}

func (Attempt) TableName() string {
	return "attempts"
}
