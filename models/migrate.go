package models

import "gorm.io/gorm"

// todoTable is the migration-only shape of the todo table. The User field
// exists so the foreign key constraint is created; records never carry it.
type todoTable struct {
	Todo
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION;"`
}

func (todoTable) TableName() string {
	return "todo"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &todoTable{})
}
