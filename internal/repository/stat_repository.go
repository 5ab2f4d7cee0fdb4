package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type StatRepository struct {
	DB *gorm.DB
}

func NewStatRepository(db *gorm.DB) *StatRepository {
	return &StatRepository{DB: db}
}

func (r *StatRepository) GetAll() ([]model.Stat, error) {
	var stats []model.Stat
	err := r.DB.Order("created_at asc").Find(&stats).Error
	return stats, err
}

func (r *StatRepository) FindByID(id uint) (*model.Stat, error) {
	var stat model.Stat
	err := r.DB.First(&stat, id).Error
	return &stat, err
}

func (r *StatRepository) Create(stat *model.Stat) error {
	return r.DB.Create(stat).Error
}

func (r *StatRepository) Update(stat *model.Stat) error {
	return r.DB.Save(stat).Error
}

func (r *StatRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Stat{}, id).Error
}
