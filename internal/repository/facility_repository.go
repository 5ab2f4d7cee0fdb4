package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type FacilityRepository struct {
	DB *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) *FacilityRepository {
	return &FacilityRepository{DB: db}
}

func (r *FacilityRepository) GetAll() ([]model.Facility, error) {
	var facilities []model.Facility
	err := r.DB.Order("created_at asc").Find(&facilities).Error
	return facilities, err
}

func (r *FacilityRepository) FindByID(id uint) (*model.Facility, error) {
	var facility model.Facility
	err := r.DB.First(&facility, id).Error
	return &facility, err
}

func (r *FacilityRepository) Create(facility *model.Facility) error {
	return r.DB.Create(facility).Error
}

func (r *FacilityRepository) Update(facility *model.Facility) error {
	return r.DB.Save(facility).Error
}

func (r *FacilityRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Facility{}, id).Error
}
