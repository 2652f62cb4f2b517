package model

// swagger:model Class
type Class struct {
	BaseModel
	TeacherID  uint   `gorm:"index;not null" json:"teacherId"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Code       string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Grade      string `gorm:"size:50" json:"grade"`
	SchoolYear string `gorm:"size:20" json:"schoolYear"`
}

func (Class) TableName() string {
	return "classes"
}

// Student is a lightweight roster entry. Learners identify by nickname per
// class and are not strongly authenticated; a row is created on first
// attempt when none exists yet.
// swagger:model Student
type Student struct {
	BaseModel
	ClassID  uint   `gorm:"index:idx_class_nickname,unique;not null" json:"classId"`
	Nickname string `gorm:"size:100;index:idx_class_nickname,unique;not null" json:"nickname"`
}

func (Student) TableName() string {
	return "students"
}
