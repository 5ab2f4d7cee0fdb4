package database

import (
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/pkg/monitoring"
	"log"

	"gorm.io/gorm"
)

// SeedDefaultContent inserts the static default content for every
// entity whose table is still empty. It runs at startup after
// migration and is idempotent: tables that already hold rows are left
// untouched, so admin edits survive redeploys. Content reads never
// write; this is the only place defaults are persisted.
func SeedDefaultContent(db *gorm.DB) error {
	seeders := []func(*gorm.DB) error{
		seedHero,
		seedStats,
		seedWhyChooseUs,
		seedFacilities,
		seedEvents,
		seedTermBanner,
		seedFooter,
		seedSectionSettings,
		seedProgramPages,
	}

	for _, seed := range seeders {
		if err := seed(db); err != nil {
			return err
		}
	}

	log.Println("Default content seeding completed")
	return nil
}

func seedHero(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Hero{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hero := model.DefaultHero()
	if err := db.Create(&hero).Error; err != nil {
		return err
	}
	monitoring.SeededEntities.Inc()
	return nil
}

func seedStats(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Stat{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, s := range model.DefaultStats() {
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}
	monitoring.SeededEntities.Inc()
	return nil
}

func seedWhyChooseUs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.WhyChooseUs{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	wcu := model.DefaultWhyChooseUs()
	if err := db.Create(&wcu).Error; err != nil {
		return err
	}
	monitoring.SeededEntities.Inc()
	return nil
}

func seedFacilities(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Facility{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, f := range model.DefaultFacilities() {
		if err := db.Create(&f).Error; err != nil {
			return err
		}
	}
	monitoring.SeededEntities.Inc()
	return nil
}

func seedEvents(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Event{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, e := range model.DefaultEvents() {
		if err := db.Create(&e).Error; err != nil {
			return err
		}
	}
	monitoring.SeededEntities.Inc()
	return nil
}

func seedTermBanner(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.TermBanner{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	banner := model.DefaultTermBanner()
	if err := db.Create(&banner).Error; err != nil {
		return err
	}
	monitoring.SeededEntities.Inc()
	return nil
}

func seedFooter(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Footer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	footer := model.DefaultFooter()
	if err := db.Create(&footer).Error; err != nil {
		return err
	}
	monitoring.SeededEntities.Inc()
	return nil
}

func seedSectionSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.SectionSetting{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, s := range model.DefaultSectionSettings() {
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}
	monitoring.SeededEntities.Inc()
	return nil
}

func seedProgramPages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.ProgramPage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, p := range model.DefaultProgramPages() {
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	monitoring.SeededEntities.Inc()
	return nil
}
