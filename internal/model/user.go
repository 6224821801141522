package model

import (
	"time"
)

type User struct {
	UID       int64     `gorm:"column:uid;primaryKey;autoIncrement" json:"uid"`
	Email     string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "user"
}
