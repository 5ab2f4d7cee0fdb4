package service

import (
	"context"
	"errors"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SiteService backs the admin editors: singleton upserts and the
// collection CRUD for stats, facilities and events. Writes here are
// last-write-wins full-record upserts, matching the admin form flow.
type SiteService struct {
	HeroRepo       *repository.HeroRepository
	StatRepo       *repository.StatRepository
	WhyChooseRepo  *repository.WhyChooseUsRepository
	FacilityRepo   *repository.FacilityRepository
	EventRepo      *repository.EventRepository
	TermBannerRepo *repository.TermBannerRepository
	FooterRepo     *repository.FooterRepository
	SectionRepo    *repository.SectionSettingRepository
	Storage        *StorageService
}

func NewSiteService(
	heroRepo *repository.HeroRepository,
	statRepo *repository.StatRepository,
	whyChooseRepo *repository.WhyChooseUsRepository,
	facilityRepo *repository.FacilityRepository,
	eventRepo *repository.EventRepository,
	termBannerRepo *repository.TermBannerRepository,
	footerRepo *repository.FooterRepository,
	sectionRepo *repository.SectionSettingRepository,
	storage *StorageService,
) *SiteService {
	return &SiteService{
		HeroRepo:       heroRepo,
		StatRepo:       statRepo,
		WhyChooseRepo:  whyChooseRepo,
		FacilityRepo:   facilityRepo,
		EventRepo:      eventRepo,
		TermBannerRepo: termBannerRepo,
		FooterRepo:     footerRepo,
		SectionRepo:    sectionRepo,
		Storage:        storage,
	}
}

func (s *SiteService) UpsertHero(hero *model.Hero) error {
	return s.HeroRepo.Upsert(hero)
}

func (s *SiteService) UpsertWhyChooseUs(wcu *model.WhyChooseUs) error {
	return s.WhyChooseRepo.Upsert(wcu)
}

func (s *SiteService) UpsertTermBanner(banner *model.TermBanner) error {
	return s.TermBannerRepo.Upsert(banner)
}

func (s *SiteService) UpsertFooter(footer *model.Footer) error {
	return s.FooterRepo.Upsert(footer)
}

func (s *SiteService) ListSectionSettings() ([]model.SectionSetting, error) {
	return s.SectionRepo.GetAll()
}

func (s *SiteService) UpsertSectionSetting(setting *model.SectionSetting) error {
	return s.SectionRepo.Upsert(setting)
}

func (s *SiteService) CreateStat(stat *model.Stat) error {
	return s.StatRepo.Create(stat)
}

func (s *SiteService) UpdateStat(stat *model.Stat) error {
	return s.StatRepo.Update(stat)
}

func (s *SiteService) DeleteStat(id uint) error {
	return s.StatRepo.Delete(id)
}

func (s *SiteService) CreateFacility(facility *model.Facility) error {
	return s.FacilityRepo.Create(facility)
}

func (s *SiteService) UpdateFacility(facility *model.Facility) error {
	return s.FacilityRepo.Update(facility)
}

// DeleteFacility removes the row and, best-effort, its stored image
// and video.
func (s *SiteService) DeleteFacility(ctx context.Context, id uint) error {
	facility, err := s.FacilityRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.FacilityRepo.Delete(id); err != nil {
		return err
	}

	if facility.ImageURL != nil && *facility.ImageURL != "" {
		s.Storage.DeleteByURL(ctx, *facility.ImageURL)
	}
	if facility.VideoURL != "" {
		s.Storage.DeleteByURL(ctx, facility.VideoURL)
	}
	if facility.VideoThumbnail != "" {
		s.Storage.DeleteByURL(ctx, facility.VideoThumbnail)
	}
	return nil
}

func (s *SiteService) CreateEvent(event *model.Event) error {
	return s.EventRepo.Create(event)
}

func (s *SiteService) UpdateEvent(event *model.Event) error {
	return s.EventRepo.Update(event)
}

func (s *SiteService) DeleteEvent(ctx context.Context, id uint) error {
	event, err := s.EventRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.EventRepo.Delete(id); err != nil {
		return err
	}

	if event.ImageURL != nil && *event.ImageURL != "" {
		s.Storage.DeleteByURL(ctx, *event.ImageURL)
	}
	return nil
}

// DeactivateExpiredBanners runs from the background ticker.
func (s *SiteService) DeactivateExpiredBanners() error {
	n, err := s.TermBannerRepo.DeactivateExpired(time.Now())
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Log.Info("deactivated expired term banners", zap.Int64("count", n))
	}
	return nil
}
