package model

// Stat is one homepage statistic, e.g. {"Students", "1000+"}. Icon
// holds an inline SVG path string.
type Stat struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name"`
	Stat string `gorm:"size:50;not null" json:"stat"`
	Icon string `gorm:"type:text" json:"icon"`
}

func (Stat) TableName() string {
	return "stats"
}
