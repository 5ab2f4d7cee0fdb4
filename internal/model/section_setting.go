package model

// SectionSetting controls visibility and title of optional homepage
// sections, keyed by section name ("stats", ...). IsVisible carries no
// column default: GORM would skip a false value on insert and the
// database default would win. The seeder sets the starting value.
type SectionSetting struct {
	BaseModel
	Section   string `gorm:"size:50;uniqueIndex;not null" json:"section"`
	Title     string `gorm:"size:255" json:"title"`
	IsVisible bool   `json:"isVisible"`
}

func (SectionSetting) TableName() string {
	return "section_settings"
}
