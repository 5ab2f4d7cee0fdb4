package model

import "time"

// Event is a school event, listed by date ascending.
type Event struct {
	BaseModel
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"index" json:"date"`
	ImageURL    *string   `gorm:"size:500" json:"imageUrl"`
}

func (Event) TableName() string {
	return "events"
}
