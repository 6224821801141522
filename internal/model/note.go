package model

import (
	"time"
)

type Note struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UID       int64     `gorm:"column:uid;index;not null" json:"uid"`
	Title     string    `gorm:"column:title;size:512;not null" json:"title"`
	Text      string    `gorm:"column:text;type:text;not null" json:"text"`
	ImageURL  string    `gorm:"column:image_url;size:1024" json:"imageUrl"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;index" json:"updatedAt"`
}

func (Note) TableName() string {
	return "note"
}
