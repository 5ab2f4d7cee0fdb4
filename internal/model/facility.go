package model

// Facility is a campus facility card. ImageURL is nullable: a facility
// may be published before a photo is uploaded. VideoURL/VideoThumbnail
// carry an optional campus tour clip.
type Facility struct {
	BaseModel
	Title          string  `gorm:"size:255;not null" json:"title"`
	Description    string  `gorm:"type:text" json:"description"`
	ImageURL       *string `gorm:"size:500" json:"imageUrl"`
	VideoURL       string  `gorm:"size:500" json:"videoUrl"`
	VideoThumbnail string  `gorm:"size:500" json:"videoThumbnail"`
}

func (Facility) TableName() string {
	return "facilities"
}
