package repository

import (
	"lingua_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ProgramPageRepository struct {
	DB *gorm.DB
}

func NewProgramPageRepository(db *gorm.DB) *ProgramPageRepository {
	return &ProgramPageRepository{DB: db}
}

func (r *ProgramPageRepository) withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Levels", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, id asc")
		}).
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, id asc")
		}).
		Preload("Schedule").
		Preload("Tuitions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, id asc")
		}).
		Preload("Materials")
}

func (r *ProgramPageRepository) GetAll() ([]model.ProgramPage, error) {
	var pages []model.ProgramPage
	err := r.withChildren(r.DB).Order("created_at asc").Find(&pages).Error
	return pages, err
}

// GetAllSummaries skips child preloads; enough for homepage cards.
func (r *ProgramPageRepository) GetAllSummaries() ([]model.ProgramPage, error) {
	var pages []model.ProgramPage
	err := r.DB.Order("created_at asc").Find(&pages).Error
	return pages, err
}

func (r *ProgramPageRepository) FindByID(id uint) (*model.ProgramPage, error) {
	var page model.ProgramPage
	err := r.withChildren(r.DB).First(&page, id).Error
	return &page, err
}

func (r *ProgramPageRepository) FindBySlug(slug string) (*model.ProgramPage, error) {
	var page model.ProgramPage
	err := r.withChildren(r.DB).Where("slug = ?", slug).First(&page).Error
	return &page, err
}

// Create inserts the page row only; children are inserted separately
// so that per-child failures can be collected.
func (r *ProgramPageRepository) Create(page *model.ProgramPage) error {
	return r.DB.Omit("Levels", "Features", "Schedule", "Tuitions", "Materials").Create(page).Error
}

func (r *ProgramPageRepository) Save(page *model.ProgramPage) error {
	return r.DB.Omit("Levels", "Features", "Schedule", "Tuitions", "Materials").Save(page).Error
}

func (r *ProgramPageRepository) CreateLevel(level *model.ProgramLevel) error {
	return r.DB.Create(level).Error
}

func (r *ProgramPageRepository) CreateFeature(feature *model.ProgramFeature) error {
	return r.DB.Create(feature).Error
}

func (r *ProgramPageRepository) CreateSchedule(schedule *model.ProgramSchedule) error {
	return r.DB.Create(schedule).Error
}

func (r *ProgramPageRepository) CreateTuition(tuition *model.ProgramTuition) error {
	return r.DB.Create(tuition).Error
}

func (r *ProgramPageRepository) CreateMaterial(material *model.ProgramMaterial) error {
	return r.DB.Create(material).Error
}

// DeleteChildren removes every child record of a page inside tx. Hard
// deletes: a soft-deleted schedule row would still occupy the unique
// program_page_id slot and block the replacement insert.
func (r *ProgramPageRepository) DeleteChildren(tx *gorm.DB, pageID uint) error {
	for _, m := range []interface{}{
		&model.ProgramLevel{},
		&model.ProgramFeature{},
		&model.ProgramSchedule{},
		&model.ProgramTuition{},
		&model.ProgramMaterial{},
	} {
		if err := tx.Unscoped().Where("program_page_id = ?", pageID).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *ProgramPageRepository) Delete(id uint) error {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := r.DeleteChildren(tx, id); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&model.ProgramPage{}, id).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
