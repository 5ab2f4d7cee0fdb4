package controller

import (
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	MediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

// @Summary Upload an image into a storage bucket
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param bucket formData string true "target bucket"
// @Param file formData file true "image file"
// @Success 201 {object} util.Response
// @Router /admin/upload/image [post]
func (c *MediaController) UploadImage(ctx *gin.Context) {
	bucket := ctx.PostForm("bucket")
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	url, err := c.MediaService.UploadImage(ctx, bucket, file)
	if err != nil {
		switch err {
		case util.ErrUnknownBucket, util.ErrInvalidImageExt:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"url": url})
}

// @Summary Upload a facility tour video
// @Description Stores the clip in the facilities bucket and extracts a thumbnail frame.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "video file"
// @Success 201 {object} util.Response
// @Router /admin/upload/video [post]
func (c *MediaController) UploadVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	videoURL, thumbnailURL, err := c.MediaService.UploadFacilityVideo(ctx, file)
	if err != nil {
		if err == util.ErrInvalidVideoExt {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"videoUrl": videoURL, "thumbnailUrl": thumbnailURL})
}
