package util

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const slugMaxLen = 160

// GenerateSlug normalizes a display name into a URL-safe slug:
// lower-case, runs of non-alphanumerics collapsed to a single hyphen,
// no leading or trailing hyphen.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// GenerateUniqueSlug derives a slug from base and probes the table for
// collisions, appending -2, -3, ... until a free one is found. Soft
// deleted rows still hold their slug.
func GenerateUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	slug := GenerateSlug(base)
	if slug == "" {
		slug = "page"
	}
	if len(slug) > slugMaxLen {
		slug = strings.Trim(slug[:slugMaxLen], "-")
	}

	candidate := slug
	for i := 2; i < 1000; i++ {
		var count int64
		if err := db.Table(table).Where(fmt.Sprintf("%s = ?", column), candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
	return "", errors.New("failed to generate unique slug after many attempts")
}
