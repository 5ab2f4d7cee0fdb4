package model

import "time"

// TermBanner is the enrollment announcement strip above the header.
// EndsAt, when set, lets the background task deactivate it after the
// enrollment window closes.
type TermBanner struct {
	BaseModel
	Text     string     `gorm:"type:text" json:"text"`
	IsActive bool       `json:"isActive"`
	EndsAt   *time.Time `json:"endsAt"`
}

func (TermBanner) TableName() string {
	return "term_banners"
}
