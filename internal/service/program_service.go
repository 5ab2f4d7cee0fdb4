package service

import (
	"context"
	"errors"
	"fmt"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgramPageInput is the shared validation schema for program page
// creation and updates; binding tags are enforced at the API boundary
// for both paths.
type ProgramPageInput struct {
	Name         string             `json:"name" binding:"required,max=255"`
	Type         model.ProgramType  `json:"type" binding:"omitempty,oneof=english chinese ielts"`
	Theme        model.ProgramTheme `json:"theme" binding:"omitempty,oneof=blue red"`
	Tag          string             `json:"tag" binding:"max=100"`
	Price        string             `json:"price" binding:"max=100"`
	CardFeatures []string           `json:"cardFeatures"`
	ButtonText   string             `json:"buttonText" binding:"max=100"`
	ButtonLink   string             `json:"buttonLink" binding:"max=255"`
	Description  string             `json:"description"`

	IntroText      string `json:"introText"`
	IntroImage     string `json:"introImage" binding:"max=500"`
	WhyChooseTitle string `json:"whyChooseTitle" binding:"max=255"`
	WhyChooseText  string `json:"whyChooseText"`

	Levels    []ProgramLevelInput    `json:"levels" binding:"dive"`
	Features  []ProgramFeatureInput  `json:"features" binding:"dive"`
	Schedule  *ProgramScheduleInput  `json:"schedule"`
	Tuitions  []ProgramTuitionInput  `json:"tuitions" binding:"dive"`
	Materials []ProgramMaterialInput `json:"materials" binding:"dive"`
}

type ProgramLevelInput struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Badge         string   `json:"badge" binding:"max=100"`
	Duration      string   `json:"duration" binding:"max=100"`
	WeeklyHours   string   `json:"weeklyHours" binding:"max=100"`
	Prerequisites string   `json:"prerequisites" binding:"max=255"`
	Description   string   `json:"description"`
	Outcomes      []string `json:"outcomes"`
	SortOrder     int      `json:"sortOrder"`
}

type ProgramFeatureInput struct {
	Icon        model.FeatureIcon `json:"icon" binding:"required,oneof=book globe users award clock chat certificate"`
	Title       string            `json:"title" binding:"required,max=255"`
	Description string            `json:"description"`
	SortOrder   int               `json:"sortOrder"`
}

type ProgramScheduleInput struct {
	Times     model.ScheduleTimes     `json:"times"`
	Durations model.ScheduleDurations `json:"durations"`
}

type ProgramTuitionInput struct {
	Price            string   `json:"price" binding:"required,max=100"`
	Levels           []string `json:"levels"`
	ApplicableLevels []int    `json:"applicableLevels"`
	SortOrder        int      `json:"sortOrder"`
}

type ProgramMaterialInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"max=500"`
	Level       string `json:"level" binding:"max=100"`
}

type ProgramService struct {
	Repo    *repository.ProgramPageRepository
	Storage *StorageService
	DB      *gorm.DB
}

func NewProgramService(repo *repository.ProgramPageRepository, storage *StorageService, db *gorm.DB) *ProgramService {
	return &ProgramService{Repo: repo, Storage: storage, DB: db}
}

func (s *ProgramService) List() ([]model.ProgramPage, error) {
	return s.Repo.GetAll()
}

func (s *ProgramService) GetByID(id uint) (*model.ProgramPage, error) {
	page, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProgramNotFound
	}
	return page, err
}

func (s *ProgramService) GetBySlug(slug string) (*model.ProgramPage, error) {
	page, err := s.Repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProgramNotFound
	}
	return page, err
}

func (s *ProgramService) applyInput(page *model.ProgramPage, input *ProgramPageInput) {
	page.Name = input.Name
	if input.Type != "" {
		page.Type = input.Type
	}
	if input.Theme != "" {
		page.Theme = input.Theme
	}
	page.Tag = input.Tag
	page.Price = input.Price
	page.CardFeatures = datatypes.JSONSlice[string](input.CardFeatures)
	page.ButtonText = input.ButtonText
	page.ButtonLink = input.ButtonLink
	page.Description = input.Description
	page.IntroText = input.IntroText
	page.IntroImage = input.IntroImage
	page.WhyChooseTitle = input.WhyChooseTitle
	page.WhyChooseText = input.WhyChooseText
}

// createChildren inserts every nested record, collecting failures
// instead of aborting: the page itself already exists, and the caller
// reports partial failures as 207 Multi-Status.
func (s *ProgramService) createChildren(page *model.ProgramPage, input *ProgramPageInput) []error {
	var errs []error

	for i, in := range input.Levels {
		level := model.ProgramLevel{
			ProgramPageID: page.ID,
			Title:         in.Title,
			Badge:         in.Badge,
			Duration:      in.Duration,
			WeeklyHours:   in.WeeklyHours,
			Prerequisites: in.Prerequisites,
			Description:   in.Description,
			Outcomes:      datatypes.JSONSlice[string](in.Outcomes),
			SortOrder:     in.SortOrder,
		}
		if err := s.Repo.CreateLevel(&level); err != nil {
			errs = append(errs, fmt.Errorf("level %d (%s): %w", i, in.Title, err))
			continue
		}
		page.Levels = append(page.Levels, level)
	}

	for i, in := range input.Features {
		feature := model.ProgramFeature{
			ProgramPageID: page.ID,
			Icon:          in.Icon,
			Title:         in.Title,
			Description:   in.Description,
			SortOrder:     in.SortOrder,
		}
		if err := s.Repo.CreateFeature(&feature); err != nil {
			errs = append(errs, fmt.Errorf("feature %d (%s): %w", i, in.Title, err))
			continue
		}
		page.Features = append(page.Features, feature)
	}

	// New pages without an explicit schedule get the default template.
	schedule := model.DefaultSchedule()
	if input.Schedule != nil {
		schedule = model.ProgramSchedule{
			Times:     input.Schedule.Times,
			Durations: input.Schedule.Durations,
		}
	}
	schedule.ProgramPageID = page.ID
	if err := s.Repo.CreateSchedule(&schedule); err != nil {
		errs = append(errs, fmt.Errorf("schedule: %w", err))
	} else {
		page.Schedule = &schedule
	}

	for i, in := range input.Tuitions {
		tuition := model.ProgramTuition{
			ProgramPageID:    page.ID,
			Price:            in.Price,
			Levels:           datatypes.JSONSlice[string](in.Levels),
			ApplicableLevels: datatypes.JSONSlice[int](in.ApplicableLevels),
			SortOrder:        in.SortOrder,
		}
		if err := s.Repo.CreateTuition(&tuition); err != nil {
			errs = append(errs, fmt.Errorf("tuition %d: %w", i, err))
			continue
		}
		page.Tuitions = append(page.Tuitions, tuition)
	}

	for i, in := range input.Materials {
		material := model.ProgramMaterial{
			ProgramPageID: page.ID,
			Title:         in.Title,
			Description:   in.Description,
			Image:         in.Image,
			Level:         in.Level,
		}
		if err := s.Repo.CreateMaterial(&material); err != nil {
			errs = append(errs, fmt.Errorf("material %d (%s): %w", i, in.Title, err))
			continue
		}
		page.Materials = append(page.Materials, material)
	}

	return errs
}

// Create inserts the page with a slug derived from its name, then the
// nested records. The returned error slice holds per-child failures;
// the page is created even when some children are not.
func (s *ProgramService) Create(input *ProgramPageInput) (*model.ProgramPage, []error, error) {
	slug, err := util.GenerateUniqueSlug(s.DB, model.ProgramPage{}.TableName(), "slug", input.Name)
	if err != nil {
		return nil, nil, err
	}

	page := &model.ProgramPage{Slug: slug}
	s.applyInput(page, input)

	if err := s.Repo.Create(page); err != nil {
		return nil, nil, err
	}

	errs := s.createChildren(page, input)
	for _, e := range errs {
		logger.Log.Error("program child insert failed", zap.Uint("page", page.ID), zap.Error(e))
	}
	return page, errs, nil
}

// Update replaces the page fields and its children wholesale; the slug
// is left untouched so published URLs stay stable.
func (s *ProgramService) Update(id uint, input *ProgramPageInput) (*model.ProgramPage, []error, error) {
	page, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	s.applyInput(page, input)
	page.Levels = nil
	page.Features = nil
	page.Schedule = nil
	page.Tuitions = nil
	page.Materials = nil

	if err := s.Repo.Save(page); err != nil {
		return nil, nil, err
	}
	if err := s.Repo.DeleteChildren(s.DB, page.ID); err != nil {
		return nil, nil, err
	}

	errs := s.createChildren(page, input)
	return page, errs, nil
}

// Delete removes the page, its children and, best-effort, the storage
// objects its images reference.
func (s *ProgramService) Delete(ctx context.Context, id uint) error {
	page, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(page.ID); err != nil {
		return err
	}

	if page.IntroImage != "" {
		s.Storage.DeleteByURL(ctx, page.IntroImage)
	}
	for _, m := range page.Materials {
		if m.Image != "" {
			s.Storage.DeleteByURL(ctx, m.Image)
		}
	}
	return nil
}
