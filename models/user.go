package models

// User はログイン用のアカウント。パスワードは平文のまま保存される。
// 所有するTodoは todo.user_id からのみ辿る。
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"not null;index" json:"email"`
	Password string `gorm:"not null" json:"password"`
}

// 既存スキーマのテーブル名に合わせる
func (User) TableName() string {
	return "user"
}
