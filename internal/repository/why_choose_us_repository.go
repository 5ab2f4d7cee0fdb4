package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type WhyChooseUsRepository struct {
	DB *gorm.DB
}

func NewWhyChooseUsRepository(db *gorm.DB) *WhyChooseUsRepository {
	return &WhyChooseUsRepository{DB: db}
}

func (r *WhyChooseUsRepository) First() (*model.WhyChooseUs, error) {
	var wcu model.WhyChooseUs
	err := r.DB.Order("created_at asc").First(&wcu).Error
	return &wcu, err
}

func (r *WhyChooseUsRepository) Upsert(wcu *model.WhyChooseUs) error {
	existing, err := r.First()
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(wcu).Error
	}
	if err != nil {
		return err
	}
	wcu.ID = existing.ID
	return r.DB.Save(wcu).Error
}
