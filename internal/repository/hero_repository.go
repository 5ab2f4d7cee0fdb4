package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type HeroRepository struct {
	DB *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *HeroRepository {
	return &HeroRepository{DB: db}
}

func (r *HeroRepository) First() (*model.Hero, error) {
	var hero model.Hero
	err := r.DB.Order("created_at asc").First(&hero).Error
	return &hero, err
}

// Upsert replaces the singleton row, creating it when none exists.
func (r *HeroRepository) Upsert(hero *model.Hero) error {
	existing, err := r.First()
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(hero).Error
	}
	if err != nil {
		return err
	}
	hero.ID = existing.ID
	return r.DB.Save(hero).Error
}
