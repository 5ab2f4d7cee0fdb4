package model

type WhyChooseFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WhyChooseUs is a singleton homepage section.
type WhyChooseUs struct {
	BaseModel
	Title       string             `gorm:"size:255;not null" json:"title"`
	Description string             `gorm:"type:text" json:"description"`
	Features    []WhyChooseFeature `gorm:"serializer:json" json:"features"`
}

func (WhyChooseUs) TableName() string {
	return "why_choose_us"
}
