package controller

import (
	"errors"

	"eduquest_backend/internal/model"
	"eduquest_backend/internal/service"
	"eduquest_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ShareController struct {
	ShareService *service.ShareService
}

func NewShareController(shareService *service.ShareService) *ShareController {
	return &ShareController{ShareService: shareService}
}

type shareRequest struct {
	ClassID     uint              `json:"classId" binding:"required"`
	ContentType model.ContentType `json:"contentType" binding:"required,oneof=quiz game activity"`
	ContentID   uint              `json:"contentId" binding:"required"`
}

type visibilityRequest struct {
	shareRequest
	Visible bool `json:"visible"`
}

// @Summary Share content with a class
// @Tags sharing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body shareRequest true "share target"
// @Success 201 {object} util.Response
// @Router /api/teacher/shares [post]
func (c *ShareController) Share(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req shareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	share, err := c.ShareService.Share(user.UserID, req.ClassID, req.ContentType, req.ContentID)
	if err != nil {
		shareError(ctx, err)
		return
	}

	util.Created(ctx, share)
}

// @Summary Set visibility of a shared item
// @Tags sharing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body visibilityRequest true "share target and flag"
// @Success 200 {object} util.Response
// @Router /api/teacher/shares/visibility [put]
func (c *ShareController) SetVisibility(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req visibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ShareService.SetVisibility(user.UserID, req.ClassID, req.ContentType, req.ContentID, req.Visible); err != nil {
		shareError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Unshare content from a class
// @Tags sharing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body shareRequest true "share target"
// @Success 200 {object} util.Response
// @Router /api/teacher/shares [delete]
func (c *ShareController) Unshare(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req shareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ShareService.Unshare(user.UserID, req.ClassID, req.ContentType, req.ContentID); err != nil {
		shareError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary List the teacher's shares
// @Tags sharing
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/teacher/shares [get]
func (c *ShareController) ListShares(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	shares, err := c.ShareService.ListForTeacher(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, shares)
}

// @Summary Shared content for a class join code
// @Description Learner-facing: no authentication beyond the class code.
// @Tags sharing
// @Produce json
// @Param code path string true "class join code"
// @Success 200 {object} util.Response
// @Router /api/public/classes/{code}/content [get]
func (c *ShareController) SharedContent(ctx *gin.Context) {
	content, err := c.ShareService.SharedContentForCode(ctx.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, content)
}

func shareError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, util.ErrShareNotFound),
		errors.Is(err, util.ErrContentNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
