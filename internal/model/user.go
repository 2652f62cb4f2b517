package model

import "time"

type UserRole string

const (
	Teacher UserRole = "teacher"
	Visitor UserRole = "visitor"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('teacher','visitor','admin');default:'teacher'" json:"role"`
	School    string    `gorm:"size:150" json:"school"`
	Language  string    `gorm:"size:10;default:'en'" json:"language"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
