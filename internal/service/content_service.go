package service

import (
	"errors"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/logger"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentService serves the public site content. Every fetcher is a
// pure read with a static fallback: missing rows and backend failures
// both resolve to the hardcoded defaults, so callers never receive an
// error and pages never render empty. Defaults are persisted only by
// the seeder (pkg/database), never here.
type ContentService struct {
	HeroRepo        *repository.HeroRepository
	StatRepo        *repository.StatRepository
	WhyChooseRepo   *repository.WhyChooseUsRepository
	FacilityRepo    *repository.FacilityRepository
	EventRepo       *repository.EventRepository
	TermBannerRepo  *repository.TermBannerRepository
	FooterRepo      *repository.FooterRepository
	SectionRepo     *repository.SectionSettingRepository
	ProgramPageRepo *repository.ProgramPageRepository
}

func NewContentService(
	heroRepo *repository.HeroRepository,
	statRepo *repository.StatRepository,
	whyChooseRepo *repository.WhyChooseUsRepository,
	facilityRepo *repository.FacilityRepository,
	eventRepo *repository.EventRepository,
	termBannerRepo *repository.TermBannerRepository,
	footerRepo *repository.FooterRepository,
	sectionRepo *repository.SectionSettingRepository,
	programPageRepo *repository.ProgramPageRepository,
) *ContentService {
	return &ContentService{
		HeroRepo:        heroRepo,
		StatRepo:        statRepo,
		WhyChooseRepo:   whyChooseRepo,
		FacilityRepo:    facilityRepo,
		EventRepo:       eventRepo,
		TermBannerRepo:  termBannerRepo,
		FooterRepo:      footerRepo,
		SectionRepo:     sectionRepo,
		ProgramPageRepo: programPageRepo,
	}
}

// PageContent is the composite object consumed by the page shell and
// the homepage.
type PageContent struct {
	Hero        model.Hero          `json:"hero"`
	Stats       []model.Stat        `json:"stats"`
	StatsTitle  string              `json:"statsTitle"`
	Programs    []model.ProgramPage `json:"programs"`
	WhyChooseUs model.WhyChooseUs   `json:"whyChooseUs"`
	Facilities  []model.Facility    `json:"facilities"`
	Events      []model.Event       `json:"events"`
	TermBanner  model.TermBanner    `json:"termBanner"`
	Footer      model.Footer        `json:"footer"`
}

func logFallback(entity string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	logger.Log.Error("content fetch failed, serving default", zap.String("entity", entity), zap.Error(err))
}

func (s *ContentService) GetHeroContent() model.Hero {
	hero, err := s.HeroRepo.First()
	if err != nil {
		logFallback("hero", err)
		return model.DefaultHero()
	}
	return *hero
}

// GetStatsContent resolves the stats section setting alongside the
// rows: a hidden section yields an empty collection no matter what the
// table holds, and a custom title overrides the default.
func (s *ContentService) GetStatsContent() ([]model.Stat, string) {
	title := model.DefaultStatsTitle

	setting, err := s.SectionRepo.FindBySection(util.SectionStats)
	if err == nil {
		if setting.Title != "" {
			title = setting.Title
		}
		if !setting.IsVisible {
			return []model.Stat{}, title
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logFallback("section_settings", err)
	}

	stats, err := s.StatRepo.GetAll()
	if err != nil {
		logFallback("stats", err)
		return model.DefaultStats(), title
	}
	if len(stats) == 0 {
		return model.DefaultStats(), title
	}
	return stats, title
}

func (s *ContentService) GetProgramsContent() []model.ProgramPage {
	programs, err := s.ProgramPageRepo.GetAllSummaries()
	if err != nil {
		logFallback("program_pages", err)
		return model.DefaultProgramPages()
	}
	if len(programs) == 0 {
		return model.DefaultProgramPages()
	}
	return programs
}

func (s *ContentService) GetWhyChooseUsContent() model.WhyChooseUs {
	wcu, err := s.WhyChooseRepo.First()
	if err != nil {
		logFallback("why_choose_us", err)
		return model.DefaultWhyChooseUs()
	}
	return *wcu
}

func (s *ContentService) GetFacilitiesContent() []model.Facility {
	facilities, err := s.FacilityRepo.GetAll()
	if err != nil {
		logFallback("facilities", err)
		return model.DefaultFacilities()
	}
	if len(facilities) == 0 {
		return model.DefaultFacilities()
	}
	return facilities
}

func (s *ContentService) GetEventsContent() []model.Event {
	events, err := s.EventRepo.GetAll()
	if err != nil {
		logFallback("events", err)
		return model.DefaultEvents()
	}
	if len(events) == 0 {
		return model.DefaultEvents()
	}
	return events
}

func (s *ContentService) GetTermBannerContent() model.TermBanner {
	banner, err := s.TermBannerRepo.First()
	if err != nil {
		logFallback("term_banners", err)
		return model.DefaultTermBanner()
	}
	return *banner
}

func (s *ContentService) GetFooterContent() model.Footer {
	footer, err := s.FooterRepo.First()
	if err != nil {
		logFallback("footers", err)
		return model.DefaultFooter()
	}
	return *footer
}

// GetPageContent fans out all entity fetchers concurrently and
// assembles the composite page object. Each goroutine writes a
// distinct field, so no locking is needed; every branch already falls
// back internally, so the aggregate cannot fail.
func (s *ContentService) GetPageContent() PageContent {
	var content PageContent
	var wg sync.WaitGroup

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() { content.Hero = s.GetHeroContent() })
	run(func() { content.Stats, content.StatsTitle = s.GetStatsContent() })
	run(func() { content.Programs = s.GetProgramsContent() })
	run(func() { content.WhyChooseUs = s.GetWhyChooseUsContent() })
	run(func() { content.Facilities = s.GetFacilitiesContent() })
	run(func() { content.Events = s.GetEventsContent() })
	run(func() { content.TermBanner = s.GetTermBannerContent() })
	run(func() { content.Footer = s.GetFooterContent() })

	wg.Wait()
	return content
}
