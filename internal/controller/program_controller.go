package controller

import (
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ProgramController is the REST surface over the unified program
// family. Writes sit behind JWT role checks and the CSRF middleware.
type ProgramController struct {
	ProgramService *service.ProgramService
}

func NewProgramController(programService *service.ProgramService) *ProgramController {
	return &ProgramController{ProgramService: programService}
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// @Summary List program pages with nested content
// @Tags programs
// @Produce json
// @Success 200 {object} util.Response
// @Router /programs [get]
func (c *ProgramController) List(ctx *gin.Context) {
	pages, err := c.ProgramService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pages)
}

// @Summary Get a program page by id
// @Tags programs
// @Produce json
// @Param id path int true "program page id"
// @Success 200 {object} util.Response
// @Router /programs/{id} [get]
func (c *ProgramController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	page, err := c.ProgramService.GetByID(id)
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

// @Summary Create a program page with nested records
// @Description Responds 207 when the page was created but some nested records failed.
// @Tags programs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Success 207 {object} util.Response
// @Router /programs [post]
func (c *ProgramController) Create(ctx *gin.Context) {
	var input service.ProgramPageInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	page, childErrs, err := c.ProgramService.Create(&input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if len(childErrs) > 0 {
		util.MultiStatus(ctx, page, childErrs)
		return
	}
	util.Created(ctx, page)
}

// @Summary Update a program page, replacing nested records
// @Tags programs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "program page id"
// @Success 200 {object} util.Response
// @Router /programs/{id} [patch]
func (c *ProgramController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var input service.ProgramPageInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	page, childErrs, err := c.ProgramService.Update(id, &input)
	if err != nil {
		if err == util.ErrProgramNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	if len(childErrs) > 0 {
		util.MultiStatus(ctx, page, childErrs)
		return
	}
	util.Success(ctx, page)
}

// @Summary Delete a program page and its nested records
// @Tags programs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "program page id"
// @Success 200 {object} util.Response
// @Router /programs/{id} [delete]
func (c *ProgramController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.ProgramService.Delete(ctx, id); err != nil {
		if err == util.ErrProgramNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}
