package model

import "gorm.io/datatypes"

type ProgramType string

const (
	ProgramEnglish ProgramType = "english"
	ProgramChinese ProgramType = "chinese"
	ProgramIELTS   ProgramType = "ielts"
)

type ProgramTheme string

const (
	ThemeBlue ProgramTheme = "blue"
	ThemeRed  ProgramTheme = "red"
)

type FeatureIcon string

const (
	IconBook        FeatureIcon = "book"
	IconGlobe       FeatureIcon = "globe"
	IconUsers       FeatureIcon = "users"
	IconAward       FeatureIcon = "award"
	IconClock       FeatureIcon = "clock"
	IconChat        FeatureIcon = "chat"
	IconCertificate FeatureIcon = "certificate"
)

// ProgramPage is the unified program entity: it carries both the
// homepage card fields (tag, price, card features, button) and the
// detail page content (introduction, levels, features, schedule,
// tuition, materials). Slug is derived from Name and unique.
type ProgramPage struct {
	BaseModel
	Name         string                      `gorm:"size:255;not null" json:"name"`
	Slug         string                      `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Type         ProgramType                 `gorm:"size:20;default:'english'" json:"type"`
	Theme        ProgramTheme                `gorm:"size:20;default:'blue'" json:"theme"`
	Tag          string                      `gorm:"size:100" json:"tag"`
	Price        string                      `gorm:"size:100" json:"price"`
	CardFeatures datatypes.JSONSlice[string] `json:"cardFeatures"`
	ButtonText   string                      `gorm:"size:100" json:"buttonText"`
	ButtonLink   string                      `gorm:"size:255" json:"buttonLink"`
	Description  string                      `gorm:"type:text" json:"description"`

	IntroText      string `gorm:"type:text" json:"introText"`
	IntroImage     string `gorm:"size:500" json:"introImage"`
	WhyChooseTitle string `gorm:"size:255" json:"whyChooseTitle"`
	WhyChooseText  string `gorm:"type:text" json:"whyChooseText"`

	Levels    []ProgramLevel    `gorm:"constraint:OnDelete:CASCADE" json:"levels"`
	Features  []ProgramFeature  `gorm:"constraint:OnDelete:CASCADE" json:"features"`
	Schedule  *ProgramSchedule  `gorm:"constraint:OnDelete:CASCADE" json:"schedule"`
	Tuitions  []ProgramTuition  `gorm:"constraint:OnDelete:CASCADE" json:"tuitions"`
	Materials []ProgramMaterial `gorm:"constraint:OnDelete:CASCADE" json:"materials"`
}

func (ProgramPage) TableName() string {
	return "program_pages"
}

type ProgramLevel struct {
	BaseModel
	ProgramPageID uint                        `gorm:"index;not null" json:"programPageId"`
	Title         string                      `gorm:"size:255;not null" json:"title"`
	Badge         string                      `gorm:"size:100" json:"badge"`
	Duration      string                      `gorm:"size:100" json:"duration"`
	WeeklyHours   string                      `gorm:"size:100" json:"weeklyHours"`
	Prerequisites string                      `gorm:"size:255" json:"prerequisites"`
	Description   string                      `gorm:"type:text" json:"description"`
	Outcomes      datatypes.JSONSlice[string] `json:"outcomes"`
	SortOrder     int                         `gorm:"default:0" json:"sortOrder"`
}

func (ProgramLevel) TableName() string {
	return "program_levels"
}

type ProgramFeature struct {
	BaseModel
	ProgramPageID uint        `gorm:"index;not null" json:"programPageId"`
	Icon          FeatureIcon `gorm:"size:20" json:"icon"`
	Title         string      `gorm:"size:255;not null" json:"title"`
	Description   string      `gorm:"type:text" json:"description"`
	SortOrder     int         `gorm:"default:0" json:"sortOrder"`
}

func (ProgramFeature) TableName() string {
	return "program_features"
}

type ScheduleTimes struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

type DurationOption struct {
	Label    string `json:"label"`
	Duration string `json:"duration"`
}

type ScheduleDurations struct {
	Weekday DurationOption `json:"weekday"`
	Weekend DurationOption `json:"weekend"`
}

// ProgramSchedule is one-to-one with ProgramPage.
type ProgramSchedule struct {
	BaseModel
	ProgramPageID uint              `gorm:"uniqueIndex;not null" json:"programPageId"`
	Times         ScheduleTimes     `gorm:"serializer:json" json:"times"`
	Durations     ScheduleDurations `gorm:"serializer:json" json:"durations"`
}

func (ProgramSchedule) TableName() string {
	return "program_schedules"
}

type ProgramTuition struct {
	BaseModel
	ProgramPageID    uint                        `gorm:"index;not null" json:"programPageId"`
	Price            string                      `gorm:"size:100;not null" json:"price"`
	Levels           datatypes.JSONSlice[string] `json:"levels"`
	ApplicableLevels datatypes.JSONSlice[int]    `json:"applicableLevels"`
	SortOrder        int                         `gorm:"default:0" json:"sortOrder"`
}

func (ProgramTuition) TableName() string {
	return "program_tuitions"
}

type ProgramMaterial struct {
	BaseModel
	ProgramPageID uint   `gorm:"index;not null" json:"programPageId"`
	Title         string `gorm:"size:255;not null" json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	Image         string `gorm:"size:500" json:"image"`
	Level         string `gorm:"size:100" json:"level"`
}

func (ProgramMaterial) TableName() string {
	return "program_materials"
}
