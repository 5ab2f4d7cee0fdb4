package controller

import (
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"
	"lingua_edu_backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// ContentController serves the public site: aggregated page content
// for the shell/homepage and program detail pages by slug.
type ContentController struct {
	ContentService *service.ContentService
	ProgramService *service.ProgramService
	Cfg            *config.Config
}

func NewContentController(contentService *service.ContentService, programService *service.ProgramService, cfg *config.Config) *ContentController {
	return &ContentController{
		ContentService: contentService,
		ProgramService: programService,
		Cfg:            cfg,
	}
}

// @Summary Aggregated page content for the public site
// @Tags content
// @Produce json
// @Success 200 {object} util.Response
// @Router /content/home [get]
func (c *ContentController) GetHomeContent(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.GetPageContent())
}

// @Summary Program cards for the public site
// @Tags content
// @Produce json
// @Success 200 {object} util.Response
// @Router /content/programs [get]
func (c *ContentController) GetPrograms(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.GetProgramsContent())
}

// @Summary Program detail page by slug
// @Tags content
// @Produce json
// @Param slug path string true "program slug"
// @Success 200 {object} util.Response
// @Router /content/programs/{slug} [get]
func (c *ContentController) GetProgramBySlug(ctx *gin.Context) {
	page, err := c.ProgramService.GetBySlug(ctx.Param("slug"))
	if err != nil {
		if err == util.ErrProgramNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, page)
}

// @Summary Issue a CSRF token for subsequent write requests
// @Tags content
// @Produce json
// @Success 200 {object} util.Response
// @Router /csrf-token [get]
func (c *ContentController) GetCSRFToken(ctx *gin.Context) {
	token, err := security.GenerateCSRFToken(c.Cfg.CSRF.Secret)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"token": token})
}
