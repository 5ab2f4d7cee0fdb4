package model

// Hero is the homepage banner. Exactly one row is expected; the seeder
// guarantees it exists.
type Hero struct {
	BaseModel
	Tag                 string `gorm:"size:100" json:"tag"`
	Title               string `gorm:"size:255;not null" json:"title"`
	Description         string `gorm:"type:text" json:"description"`
	PrimaryButtonText   string `gorm:"size:100" json:"primaryButtonText"`
	PrimaryButtonLink   string `gorm:"size:255" json:"primaryButtonLink"`
	SecondaryButtonText string `gorm:"size:100" json:"secondaryButtonText"`
	SecondaryButtonLink string `gorm:"size:255" json:"secondaryButtonLink"`
	ImageURL            string `gorm:"size:500" json:"imageUrl"`
}

func (Hero) TableName() string {
	return "heroes"
}
