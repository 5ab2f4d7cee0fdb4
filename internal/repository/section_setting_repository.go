package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type SectionSettingRepository struct {
	DB *gorm.DB
}

func NewSectionSettingRepository(db *gorm.DB) *SectionSettingRepository {
	return &SectionSettingRepository{DB: db}
}

func (r *SectionSettingRepository) GetAll() ([]model.SectionSetting, error) {
	var settings []model.SectionSetting
	err := r.DB.Order("section asc").Find(&settings).Error
	return settings, err
}

func (r *SectionSettingRepository) FindBySection(section string) (*model.SectionSetting, error) {
	var setting model.SectionSetting
	err := r.DB.Where("section = ?", section).First(&setting).Error
	return &setting, err
}

func (r *SectionSettingRepository) Upsert(setting *model.SectionSetting) error {
	existing, err := r.FindBySection(setting.Section)
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(setting).Error
	}
	if err != nil {
		return err
	}
	setting.ID = existing.ID
	return r.DB.Save(setting).Error
}
