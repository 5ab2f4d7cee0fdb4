package model

// Footer is rendered on every page from the aggregated page content.
type Footer struct {
	BaseModel
	AboutText     string `gorm:"type:text" json:"aboutText"`
	AddressLine1  string `gorm:"size:255" json:"addressLine1"`
	AddressLine2  string `gorm:"size:255" json:"addressLine2"`
	Phone         string `gorm:"size:50" json:"phone"`
	Email         string `gorm:"size:100" json:"email"`
	CopyrightText string `gorm:"size:255" json:"copyrightText"`
}

func (Footer) TableName() string {
	return "footers"
}
