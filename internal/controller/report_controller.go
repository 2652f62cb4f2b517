package controller

import (
	"eduquest_backend/internal/service"
	"eduquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService   *service.ReportService
	RemedialService *service.RemedialService
	ClassService    *service.ClassService
}

func NewReportController(reportService *service.ReportService, remedialService *service.RemedialService, classService *service.ClassService) *ReportController {
	return &ReportController{
		ReportService:   reportService,
		RemedialService: remedialService,
		ClassService:    classService,
	}
}

type planPreviewRequest struct {
	Scores []service.ChapterScore `json:"scores" binding:"required,dive"`
}

// @Summary Class dashboard stats
// @Description Weekly activity, average percentage, advanced and needs-support counts, and per-learner trends. Teachers see their own classes, visitor reviewers see any.
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "class id"
// @Success 200 {object} util.Response
// @Router /api/review/classes/{id}/stats [get]
func (c *ReportController) ClassStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.ReportService.ClassStatsForUser(util.MustParseUint(ctx.Param("id")), user.UserID, user.Role)
	if err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary Raw attempts for a class
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "class id"
// @Success 200 {object} util.Response
// @Router /api/review/classes/{id}/attempts [get]
func (c *ReportController) ClassAttempts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.ReportService.ClassAttemptsForUser(util.MustParseUint(ctx.Param("id")), user.UserID, user.Role)
	if err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}

// @Summary Dashboard overview across the teacher's classes
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/teacher/overview [get]
func (c *ReportController) TeacherOverview(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.ReportService.GetTeacherStats(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary Remedial plan for a student
// @Description Per-chapter verdicts from the student's recorded attempts, with remedial catalog content attached for the lower bands.
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "class id"
// @Param studentId path int true "student id"
// @Success 200 {object} util.Response
// @Router /api/teacher/classes/{id}/students/{studentId}/plan [get]
func (c *ReportController) StudentPlan(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	student, err := c.ClassService.GetStudent(
		util.MustParseUint(ctx.Param("id")),
		user.UserID,
		util.MustParseUint(ctx.Param("studentId")),
	)
	if err != nil {
		classError(ctx, err)
		return
	}

	plan, err := c.RemedialService.PlanForStudent(student.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, plan)
}

// @Summary Mastery records for a student
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "class id"
// @Param studentId path int true "student id"
// @Success 200 {object} util.Response
// @Router /api/teacher/classes/{id}/students/{studentId}/mastery [get]
func (c *ReportController) StudentMastery(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	student, err := c.ClassService.GetStudent(
		util.MustParseUint(ctx.Param("id")),
		user.UserID,
		util.MustParseUint(ctx.Param("studentId")),
	)
	if err != nil {
		classError(ctx, err)
		return
	}

	records, err := c.RemedialService.StudentMastery(student.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, records)
}

// @Summary Preview a remedial plan from explicit scores
// @Description Runs the planner over submitted (chapter, score) tuples without touching stored attempts. Used by the lesson-planning screen.
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body planPreviewRequest true "chapter scores"
// @Success 200 {object} util.Response
// @Router /api/teacher/plans/preview [post]
func (c *ReportController) PlanPreview(ctx *gin.Context) {
	var req planPreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.RemedialService.BuildPlan(req.Scores))
}
