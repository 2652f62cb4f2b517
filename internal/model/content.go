package model

type ContentType string

const (
	ContentQuiz     ContentType = "quiz"
	ContentGame     ContentType = "game"
	ContentActivity ContentType = "activity"
)

// swagger:model Quiz
type Quiz struct {
	BaseModel
	TeacherID uint   `gorm:"index;not null" json:"teacherId"`
	Title     string `gorm:"size:150;not null" json:"title"`
	Chapter   string `gorm:"size:100;index" json:"chapter"`
	Questions string `gorm:"type:json" json:"questions"`
	TimeLimit int    `json:"timeLimitSeconds"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Game
type Game struct {
	BaseModel
	TeacherID  uint   `gorm:"index;not null" json:"teacherId"`
	Title      string `gorm:"size:150;not null" json:"title"`
	Chapter    string `gorm:"size:100;index" json:"chapter"`
	GameKey    string `gorm:"size:100;index" json:"gameKey"`
	Difficulty int    `gorm:"default:1" json:"difficulty"`
	Config     string `gorm:"type:json" json:"config"`
}

func (Game) TableName() string {
	return "games"
}

// swagger:model Activity
type Activity struct {
	BaseModel
	TeacherID   uint   `gorm:"index;not null" json:"teacherId"`
	Title       string `gorm:"size:150;not null" json:"title"`
	Chapter     string `gorm:"size:100;index" json:"chapter"`
	Description string `gorm:"type:text" json:"description"`
	Body        string `gorm:"type:json" json:"body"`
}

func (Activity) TableName() string {
	return "activities"
}

// ContentShare is the server-side source of truth for which content a class
// can see. One row per (class, content type, content id); toggling Visible
// hides without deleting.
// swagger:model ContentShare
type ContentShare struct {
	BaseModel
	TeacherID   uint        `gorm:"index;not null" json:"teacherId"`
	ClassID     uint        `gorm:"index:idx_share_target,unique;not null" json:"classId"`
	ContentType ContentType `gorm:"size:20;index:idx_share_target,unique;not null" json:"contentType"`
	ContentID   uint        `gorm:"index:idx_share_target,unique;not null" json:"contentId"`
	Visible     bool        `gorm:"default:true" json:"visible"`
}

func (ContentShare) TableName() string {
	return "content_shares"
}
