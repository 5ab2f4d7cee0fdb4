package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"General English Program!", "general-english-program"},
		{"IELTS  Preparation", "ielts-preparation"},
		{"  Chinese for Beginners  ", "chinese-for-beginners"},
		{"Already-Slugged", "already-slugged"},
		{"---", ""},
		{"A1/B2 Level & More", "a1-b2-level-more"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestGenerateUniqueSlug(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE pages (slug TEXT)").Error)

	slug, err := GenerateUniqueSlug(db, "pages", "slug", "General English")
	require.NoError(t, err)
	assert.Equal(t, "general-english", slug)

	require.NoError(t, db.Exec("INSERT INTO pages (slug) VALUES (?)", "general-english").Error)

	slug, err = GenerateUniqueSlug(db, "pages", "slug", "General English")
	require.NoError(t, err)
	assert.Equal(t, "general-english-2", slug)

	require.NoError(t, db.Exec("INSERT INTO pages (slug) VALUES (?)", "general-english-2").Error)

	slug, err = GenerateUniqueSlug(db, "pages", "slug", "General English")
	require.NoError(t, err)
	assert.Equal(t, "general-english-3", slug)
}

func TestGenerateUniqueSlugEmptyBase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE pages (slug TEXT)").Error)

	slug, err := GenerateUniqueSlug(db, "pages", "slug", "!!!")
	require.NoError(t, err)
	assert.Equal(t, "page", slug)
}

func TestGenerateUniqueSlugExhaustion(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE pages (slug TEXT)").Error)

	require.NoError(t, db.Exec("INSERT INTO pages (slug) VALUES (?)", "busy").Error)
	for i := 2; i < 1000; i++ {
		require.NoError(t, db.Exec("INSERT INTO pages (slug) VALUES (?)", fmt.Sprintf("busy-%d", i)).Error)
	}

	_, err = GenerateUniqueSlug(db, "pages", "slug", "busy")
	assert.Error(t, err)
}
