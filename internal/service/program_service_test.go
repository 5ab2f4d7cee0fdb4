package service

import (
	"context"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProgramService(t *testing.T) (*ProgramService, *gorm.DB) {
	t.Helper()
	db := newServiceDB(t)
	repo := repository.NewProgramPageRepository(db)
	return NewProgramService(repo, newLocalStorage(t), db), db
}

func sampleInput() *ProgramPageInput {
	return &ProgramPageInput{
		Name:  "IELTS Advanced",
		Type:  model.ProgramIELTS,
		Theme: model.ThemeBlue,
		Price: "from $200/month",
		Levels: []ProgramLevelInput{
			{Title: "Band 6 to 7", Duration: "8 weeks", Outcomes: []string{"Task 2 essays", "Speaking part 3"}},
			{Title: "Band 7+", Duration: "8 weeks", SortOrder: 1},
		},
		Features: []ProgramFeatureInput{
			{Icon: model.IconBook, Title: "Mock exams"},
		},
		Tuitions: []ProgramTuitionInput{
			{Price: "$200", Levels: []string{"Band 6 to 7"}},
		},
		Materials: []ProgramMaterialInput{
			{Title: "Official practice tests", Level: "All levels"},
		},
	}
}

func TestProgramCreate(t *testing.T) {
	s, db := newProgramService(t)

	page, childErrs, err := s.Create(sampleInput())
	require.NoError(t, err)
	assert.Empty(t, childErrs)
	assert.Equal(t, "ielts-advanced", page.Slug)
	require.NotZero(t, page.ID)

	stored, err := s.GetByID(page.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Levels, 2)
	assert.Len(t, stored.Features, 1)
	assert.Len(t, stored.Tuitions, 1)
	assert.Len(t, stored.Materials, 1)
	require.NotNil(t, stored.Schedule, "missing schedule input gets the default template")
	assert.NotEmpty(t, stored.Schedule.Times.Morning)

	for _, level := range stored.Levels {
		assert.Equal(t, page.ID, level.ProgramPageID)
	}

	var childCount int64
	require.NoError(t, db.Model(&model.ProgramLevel{}).Where("program_page_id = ?", page.ID).Count(&childCount).Error)
	assert.EqualValues(t, 2, childCount)
}

func TestProgramCreateDeduplicatesSlug(t *testing.T) {
	s, _ := newProgramService(t)

	first, _, err := s.Create(sampleInput())
	require.NoError(t, err)
	assert.Equal(t, "ielts-advanced", first.Slug)

	second, _, err := s.Create(sampleInput())
	require.NoError(t, err)
	assert.Equal(t, "ielts-advanced-2", second.Slug)
}

func TestProgramUpdateReplacesChildrenAndKeepsSlug(t *testing.T) {
	s, db := newProgramService(t)

	page, _, err := s.Create(sampleInput())
	require.NoError(t, err)

	input := sampleInput()
	input.Name = "IELTS Advanced (revised)"
	input.Levels = []ProgramLevelInput{{Title: "Single intensive track"}}
	input.Features = nil
	input.Tuitions = nil
	input.Materials = nil

	updated, childErrs, err := s.Update(page.ID, input)
	require.NoError(t, err)
	assert.Empty(t, childErrs)
	assert.Equal(t, "ielts-advanced", updated.Slug, "published URLs stay stable")
	assert.Equal(t, "IELTS Advanced (revised)", updated.Name)

	stored, err := s.GetByID(page.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Levels, 1)
	assert.Empty(t, stored.Features)
	assert.Empty(t, stored.Tuitions)
	assert.Empty(t, stored.Materials)
	require.NotNil(t, stored.Schedule, "update must install a replacement schedule")
	assert.Equal(t, page.ID, stored.Schedule.ProgramPageID)

	// The old children are physically gone; a lingering soft-deleted
	// schedule row would collide with the unique page index on the next
	// update.
	var oldRows int64
	require.NoError(t, db.Unscoped().Model(&model.ProgramLevel{}).Count(&oldRows).Error)
	assert.EqualValues(t, 1, oldRows)
	require.NoError(t, db.Unscoped().Model(&model.ProgramSchedule{}).Count(&oldRows).Error)
	assert.EqualValues(t, 1, oldRows)
}

func TestProgramUpdateTwiceKeepsSchedule(t *testing.T) {
	s, _ := newProgramService(t)

	page, _, err := s.Create(sampleInput())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, childErrs, err := s.Update(page.ID, sampleInput())
		require.NoError(t, err)
		assert.Empty(t, childErrs)
	}

	stored, err := s.GetByID(page.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Schedule)
}

func TestProgramUpdateMissingPage(t *testing.T) {
	s, _ := newProgramService(t)

	_, _, err := s.Update(999, sampleInput())
	assert.ErrorIs(t, err, util.ErrProgramNotFound)
}

func TestProgramDeleteRemovesChildren(t *testing.T) {
	s, db := newProgramService(t)

	page, _, err := s.Create(sampleInput())
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), page.ID))

	_, err = s.GetByID(page.ID)
	assert.ErrorIs(t, err, util.ErrProgramNotFound)

	var count int64
	require.NoError(t, db.Model(&model.ProgramLevel{}).Where("program_page_id = ?", page.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Model(&model.ProgramSchedule{}).Where("program_page_id = ?", page.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestProgramGetBySlug(t *testing.T) {
	s, _ := newProgramService(t)

	page, _, err := s.Create(sampleInput())
	require.NoError(t, err)

	found, err := s.GetBySlug("ielts-advanced")
	require.NoError(t, err)
	assert.Equal(t, page.ID, found.ID)

	_, err = s.GetBySlug("no-such-program")
	assert.ErrorIs(t, err, util.ErrProgramNotFound)
}
