package database

import (
	"lingua_edu_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedDefaultContentPopulatesEmptyTables(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedDefaultContent(db))

	var hero model.Hero
	require.NoError(t, db.First(&hero).Error)
	assert.Equal(t, model.DefaultHero().Title, hero.Title)

	var heroCount int64
	require.NoError(t, db.Model(&model.Hero{}).Count(&heroCount).Error)
	assert.EqualValues(t, 1, heroCount)

	var statCount int64
	require.NoError(t, db.Model(&model.Stat{}).Count(&statCount).Error)
	assert.EqualValues(t, len(model.DefaultStats()), statCount)

	var pages []model.ProgramPage
	require.NoError(t, db.Order("id asc").Find(&pages).Error)
	require.Len(t, pages, 3)
	assert.Equal(t, "general-english", pages[0].Slug)
	assert.Equal(t, "chinese-for-beginners", pages[1].Slug)
	assert.Equal(t, "ielts-preparation", pages[2].Slug)

	var setting model.SectionSetting
	require.NoError(t, db.Where("section = ?", "stats").First(&setting).Error)
	assert.True(t, setting.IsVisible)
	assert.Equal(t, model.DefaultStatsTitle, setting.Title)
}

func TestSeedDefaultContentIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedDefaultContent(db))
	require.NoError(t, SeedDefaultContent(db))

	var heroCount, statCount, pageCount int64
	require.NoError(t, db.Model(&model.Hero{}).Count(&heroCount).Error)
	require.NoError(t, db.Model(&model.Stat{}).Count(&statCount).Error)
	require.NoError(t, db.Model(&model.ProgramPage{}).Count(&pageCount).Error)

	assert.EqualValues(t, 1, heroCount)
	assert.EqualValues(t, len(model.DefaultStats()), statCount)
	assert.EqualValues(t, 3, pageCount)
}

func TestSeedDefaultContentPreservesEdits(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedDefaultContent(db))

	var hero model.Hero
	require.NoError(t, db.First(&hero).Error)
	hero.Title = "Edited by an admin"
	require.NoError(t, db.Save(&hero).Error)

	require.NoError(t, SeedDefaultContent(db))

	var after model.Hero
	require.NoError(t, db.First(&after).Error)
	assert.Equal(t, "Edited by an admin", after.Title)

	var count int64
	require.NoError(t, db.Model(&model.Hero{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
