package repository

import (
	"lingua_edu_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type TermBannerRepository struct {
	DB *gorm.DB
}

func NewTermBannerRepository(db *gorm.DB) *TermBannerRepository {
	return &TermBannerRepository{DB: db}
}

func (r *TermBannerRepository) First() (*model.TermBanner, error) {
	var banner model.TermBanner
	err := r.DB.Order("created_at asc").First(&banner).Error
	return &banner, err
}

func (r *TermBannerRepository) Upsert(banner *model.TermBanner) error {
	existing, err := r.First()
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(banner).Error
	}
	if err != nil {
		return err
	}
	banner.ID = existing.ID
	return r.DB.Save(banner).Error
}

// DeactivateExpired clears is_active on banners whose enrollment
// window has closed.
func (r *TermBannerRepository) DeactivateExpired(now time.Time) (int64, error) {
	res := r.DB.Model(&model.TermBanner{}).
		Where("is_active = ? AND ends_at IS NOT NULL AND ends_at < ?", true, now).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
