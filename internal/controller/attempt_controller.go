package controller

import (
	"errors"

	"eduquest_backend/internal/service"
	"eduquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
}

func NewAttemptController(attemptService *service.AttemptService) *AttemptController {
	return &AttemptController{AttemptService: attemptService}
}

// @Summary Submit a learner attempt
// @Description Learner-facing: identified by nickname and class join code, no account required. The percentage is derived server-side.
// @Tags attempts
// @Accept json
// @Produce json
// @Param body body service.SubmitAttemptInput true "attempt result"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/public/attempts [post]
func (c *AttemptController) Submit(ctx *gin.Context) {
	var in service.SubmitAttemptInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.AttemptService.RecordAttempt(&in)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAttempt) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"id":         attempt.ID,
		"nickname":   attempt.Nickname,
		"classCode":  attempt.ClassCode,
		"percentage": attempt.Percentage,
	})
}
