package controller

import (
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

// SiteController backs the admin editor forms: singleton upserts and
// collection CRUD for the homepage content.
type SiteController struct {
	SiteService    *service.SiteService
	ContentService *service.ContentService
}

func NewSiteController(siteService *service.SiteService, contentService *service.ContentService) *SiteController {
	return &SiteController{SiteService: siteService, ContentService: contentService}
}

// ---- Hero ----

// @Summary Hero banner for the admin editor
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/hero [get]
func (c *SiteController) GetHero(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.GetHeroContent())
}

// @Summary Upsert the hero banner
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/hero [put]
func (c *SiteController) UpsertHero(ctx *gin.Context) {
	var req struct {
		Tag                 string `json:"tag" binding:"max=100"`
		Title               string `json:"title" binding:"required,max=255"`
		Description         string `json:"description"`
		PrimaryButtonText   string `json:"primaryButtonText" binding:"max=100"`
		PrimaryButtonLink   string `json:"primaryButtonLink" binding:"max=255"`
		SecondaryButtonText string `json:"secondaryButtonText" binding:"max=100"`
		SecondaryButtonLink string `json:"secondaryButtonLink" binding:"max=255"`
		ImageURL            string `json:"imageUrl" binding:"max=500"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	hero := model.Hero{
		Tag:                 req.Tag,
		Title:               req.Title,
		Description:         req.Description,
		PrimaryButtonText:   req.PrimaryButtonText,
		PrimaryButtonLink:   req.PrimaryButtonLink,
		SecondaryButtonText: req.SecondaryButtonText,
		SecondaryButtonLink: req.SecondaryButtonLink,
		ImageURL:            req.ImageURL,
	}
	if err := c.SiteService.UpsertHero(&hero); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, hero)
}

// ---- Stats ----

// @Summary List homepage statistics
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/stats [get]
func (c *SiteController) ListStats(ctx *gin.Context) {
	// Raw rows, not the public fetcher: the editor must see stored
	// records even while the section is hidden, and must never be shown
	// unsaved defaults.
	stats, err := c.SiteService.StatRepo.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary Create a statistic
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/stats [post]
func (c *SiteController) CreateStat(ctx *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required,max=100"`
		Stat string `json:"stat" binding:"required,max=50"`
		Icon string `json:"icon"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stat := model.Stat{Name: req.Name, Stat: req.Stat, Icon: req.Icon}
	if err := c.SiteService.CreateStat(&stat); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, stat)
}

// @Summary Update a statistic
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "stat id"
// @Success 200 {object} util.Response
// @Router /admin/stats/{id} [put]
func (c *SiteController) UpdateStat(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required,max=100"`
		Stat string `json:"stat" binding:"required,max=50"`
		Icon string `json:"icon"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stat, err := c.SiteService.StatRepo.FindByID(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	stat.Name, stat.Stat, stat.Icon = req.Name, req.Stat, req.Icon
	if err := c.SiteService.UpdateStat(stat); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stat)
}

// @Summary Delete a statistic
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "stat id"
// @Success 200 {object} util.Response
// @Router /admin/stats/{id} [delete]
func (c *SiteController) DeleteStat(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.SiteService.DeleteStat(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// ---- Why choose us ----

// @Summary Upsert the "why choose us" section
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/why-choose-us [put]
func (c *SiteController) UpsertWhyChooseUs(ctx *gin.Context) {
	var req struct {
		Title       string                   `json:"title" binding:"required,max=255"`
		Description string                   `json:"description"`
		Features    []model.WhyChooseFeature `json:"features"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	wcu := model.WhyChooseUs{Title: req.Title, Description: req.Description, Features: req.Features}
	if err := c.SiteService.UpsertWhyChooseUs(&wcu); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, wcu)
}

// ---- Facilities ----

// @Summary List facilities
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/facilities [get]
func (c *SiteController) ListFacilities(ctx *gin.Context) {
	facilities, err := c.SiteService.FacilityRepo.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, facilities)
}

type facilityRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	Description    string  `json:"description"`
	ImageURL       *string `json:"imageUrl"`
	VideoURL       string  `json:"videoUrl" binding:"max=500"`
	VideoThumbnail string  `json:"videoThumbnail" binding:"max=500"`
}

// @Summary Create a facility
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/facilities [post]
func (c *SiteController) CreateFacility(ctx *gin.Context) {
	var req facilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	facility := model.Facility{
		Title:          req.Title,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		VideoURL:       req.VideoURL,
		VideoThumbnail: req.VideoThumbnail,
	}
	if err := c.SiteService.CreateFacility(&facility); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, facility)
}

// @Summary Update a facility
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "facility id"
// @Success 200 {object} util.Response
// @Router /admin/facilities/{id} [put]
func (c *SiteController) UpdateFacility(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req facilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	facility, err := c.SiteService.FacilityRepo.FindByID(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	facility.Title = req.Title
	facility.Description = req.Description
	facility.ImageURL = req.ImageURL
	facility.VideoURL = req.VideoURL
	facility.VideoThumbnail = req.VideoThumbnail
	if err := c.SiteService.UpdateFacility(facility); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, facility)
}

// @Summary Delete a facility and its stored media
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "facility id"
// @Success 200 {object} util.Response
// @Router /admin/facilities/{id} [delete]
func (c *SiteController) DeleteFacility(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.SiteService.DeleteFacility(ctx, id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// ---- Events ----

// @Summary List events
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/events [get]
func (c *SiteController) ListEvents(ctx *gin.Context) {
	events, err := c.SiteService.EventRepo.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, events)
}

type eventRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	ImageURL    *string   `json:"imageUrl"`
}

// @Summary Create an event
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/events [post]
func (c *SiteController) CreateEvent(ctx *gin.Context) {
	var req eventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event := model.Event{Title: req.Title, Description: req.Description, Date: req.Date, ImageURL: req.ImageURL}
	if err := c.SiteService.CreateEvent(&event); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, event)
}

// @Summary Update an event
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "event id"
// @Success 200 {object} util.Response
// @Router /admin/events/{id} [put]
func (c *SiteController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req eventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.SiteService.EventRepo.FindByID(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	event.Title = req.Title
	event.Description = req.Description
	event.Date = req.Date
	event.ImageURL = req.ImageURL
	if err := c.SiteService.UpdateEvent(event); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, event)
}

// @Summary Delete an event and its stored image
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "event id"
// @Success 200 {object} util.Response
// @Router /admin/events/{id} [delete]
func (c *SiteController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.SiteService.DeleteEvent(ctx, id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// ---- Term banner / footer / section settings ----

// @Summary Upsert the term banner
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/term-banner [put]
func (c *SiteController) UpsertTermBanner(ctx *gin.Context) {
	var req struct {
		Text     string     `json:"text" binding:"required"`
		IsActive bool       `json:"isActive"`
		EndsAt   *time.Time `json:"endsAt"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	banner := model.TermBanner{Text: req.Text, IsActive: req.IsActive, EndsAt: req.EndsAt}
	if err := c.SiteService.UpsertTermBanner(&banner); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, banner)
}

// @Summary Upsert the footer
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/footer [put]
func (c *SiteController) UpsertFooter(ctx *gin.Context) {
	var req struct {
		AboutText     string `json:"aboutText"`
		AddressLine1  string `json:"addressLine1" binding:"max=255"`
		AddressLine2  string `json:"addressLine2" binding:"max=255"`
		Phone         string `json:"phone" binding:"max=50"`
		Email         string `json:"email" binding:"omitempty,email"`
		CopyrightText string `json:"copyrightText" binding:"max=255"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	footer := model.Footer{
		AboutText:     req.AboutText,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		Phone:         req.Phone,
		Email:         req.Email,
		CopyrightText: req.CopyrightText,
	}
	if err := c.SiteService.UpsertFooter(&footer); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, footer)
}

// @Summary List homepage section settings
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/sections [get]
func (c *SiteController) ListSectionSettings(ctx *gin.Context) {
	settings, err := c.SiteService.ListSectionSettings()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// @Summary Upsert a homepage section setting
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/sections [put]
func (c *SiteController) UpsertSectionSetting(ctx *gin.Context) {
	var req struct {
		Section   string `json:"section" binding:"required,max=50"`
		Title     string `json:"title" binding:"max=255"`
		IsVisible bool   `json:"isVisible"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	setting := model.SectionSetting{Section: req.Section, Title: req.Title, IsVisible: req.IsVisible}
	if err := c.SiteService.UpsertSectionSetting(&setting); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, setting)
}
