package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type FooterRepository struct {
	DB *gorm.DB
}

func NewFooterRepository(db *gorm.DB) *FooterRepository {
	return &FooterRepository{DB: db}
}

func (r *FooterRepository) First() (*model.Footer, error) {
	var footer model.Footer
	err := r.DB.Order("created_at asc").First(&footer).Error
	return &footer, err
}

func (r *FooterRepository) Upsert(footer *model.Footer) error {
	existing, err := r.First()
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(footer).Error
	}
	if err != nil {
		return err
	}
	footer.ID = existing.ID
	return r.DB.Save(footer).Error
}
