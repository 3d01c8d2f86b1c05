package models

const (
	TodoContentMinLength = 3
	TodoContentMaxLength = 54
)

// Todo holds the owner only as a nullable key. The owning User is looked up
// on demand.
type Todo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Content     string `gorm:"size:54;not null;index" json:"content"`
	IsCompleted bool   `gorm:"not null" json:"is_completed"`
	UserID      *uint  `gorm:"index" json:"user_id"`
}

func (Todo) TableName() string {
	return "todo"
}
