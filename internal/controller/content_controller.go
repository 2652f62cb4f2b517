package controller

import (
	"eduquest_backend/internal/model"
	"eduquest_backend/internal/service"
	"eduquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary List the teacher's own content
// @Tags content
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/teacher/content [get]
func (c *ContentController) ListOwn(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.ContentService.TeacherContent(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// @Summary Read-only content overview for reviewers
// @Tags content
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/review/content [get]
func (c *ContentController) Overview(ctx *gin.Context) {
	overview, err := c.ContentService.Overview()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// @Summary Create a quiz
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.Quiz true "quiz"
// @Success 201 {object} util.Response
// @Router /api/teacher/quizzes [post]
func (c *ContentController) CreateQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var quiz model.Quiz
	if err := ctx.ShouldBindJSON(&quiz); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz.TeacherID = user.UserID
	if err := c.ContentService.CreateQuiz(&quiz); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, quiz)
}

// @Summary Update a quiz
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "quiz id"
// @Param body body model.Quiz true "quiz"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id} [put]
func (c *ContentController) UpdateQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var quiz model.Quiz
	if err := ctx.ShouldBindJSON(&quiz); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.ContentService.UpdateQuiz(util.MustParseUint(ctx.Param("id")), user.UserID, &quiz)
	if err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

// @Summary Delete a quiz
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id} [delete]
func (c *ContentController) DeleteQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ContentService.DeleteQuiz(util.MustParseUint(ctx.Param("id")), user.UserID); err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Create a game
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.Game true "game"
// @Success 201 {object} util.Response
// @Router /api/teacher/games [post]
func (c *ContentController) CreateGame(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var game model.Game
	if err := ctx.ShouldBindJSON(&game); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	game.TeacherID = user.UserID
	if err := c.ContentService.CreateGame(&game); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, game)
}

// @Summary Update a game
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "game id"
// @Param body body model.Game true "game"
// @Success 200 {object} util.Response
// @Router /api/teacher/games/{id} [put]
func (c *ContentController) UpdateGame(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var game model.Game
	if err := ctx.ShouldBindJSON(&game); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.ContentService.UpdateGame(util.MustParseUint(ctx.Param("id")), user.UserID, &game)
	if err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

// @Summary Delete a game
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param id path int true "game id"
// @Success 200 {object} util.Response
// @Router /api/teacher/games/{id} [delete]
func (c *ContentController) DeleteGame(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ContentService.DeleteGame(util.MustParseUint(ctx.Param("id")), user.UserID); err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Create an activity
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.Activity true "activity"
// @Success 201 {object} util.Response
// @Router /api/teacher/activities [post]
func (c *ContentController) CreateActivity(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var activity model.Activity
	if err := ctx.ShouldBindJSON(&activity); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity.TeacherID = user.UserID
	if err := c.ContentService.CreateActivity(&activity); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, activity)
}

// @Summary Update an activity
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "activity id"
// @Param body body model.Activity true "activity"
// @Success 200 {object} util.Response
// @Router /api/teacher/activities/{id} [put]
func (c *ContentController) UpdateActivity(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var activity model.Activity
	if err := ctx.ShouldBindJSON(&activity); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.ContentService.UpdateActivity(util.MustParseUint(ctx.Param("id")), user.UserID, &activity)
	if err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

// @Summary Delete an activity
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param id path int true "activity id"
// @Success 200 {object} util.Response
// @Router /api/teacher/activities/{id} [delete]
func (c *ContentController) DeleteActivity(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ContentService.DeleteActivity(util.MustParseUint(ctx.Param("id")), user.UserID); err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
