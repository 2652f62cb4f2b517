package controller

import (
	"errors"

	"eduquest_backend/internal/model"
	"eduquest_backend/internal/service"
	"eduquest_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ClassController struct {
	ClassService *service.ClassService
}

func NewClassController(classService *service.ClassService) *ClassController {
	return &ClassController{ClassService: classService}
}

type classRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Code       string `json:"code" binding:"omitempty,max=20,alphanum"`
	Grade      string `json:"grade" binding:"max=50"`
	SchoolYear string `json:"schoolYear" binding:"max=20"`
}

type addStudentRequest struct {
	Nickname string `json:"nickname" binding:"required,max=100"`
}

// classError maps the service error taxonomy onto HTTP responses:
// ownership failures are 403, unknown rows 404, the rest 500.
func classError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, util.ErrStudentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrCodeTaken):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary Create a class
// @Tags classes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body classRequest true "class details"
// @Success 201 {object} util.Response
// @Router /api/teacher/classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req classRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class := &model.Class{
		TeacherID:  user.UserID,
		Name:       req.Name,
		Code:       req.Code,
		Grade:      req.Grade,
		SchoolYear: req.SchoolYear,
	}

	if err := c.ClassService.CreateClass(class); err != nil {
		classError(ctx, err)
		return
	}

	util.Created(ctx, class)
}

// @Summary List the teacher's classes
// @Tags classes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/teacher/classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	classes, err := c.ClassService.ListClasses(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, classes)
}

// @Summary Get one class
// @Tags classes
// @Security BearerAuth
// @Produce json
// @Param id path int true "class id"
// @Success 200 {object} util.Response
// @Router /api/teacher/classes/{id} [get]
func (c *ClassController) GetClass(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	class, err := c.ClassService.GetClass(util.MustParseUint(ctx.Param("id")), user.UserID)
	if err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, class)
}

// @Summary Update a class
// @Tags classes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "class id"
// @Param body body classRequest true "class details"
// @Success 200 {object} util.Response
// @Router /api/teacher/classes/{id} [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req classRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.UpdateClass(util.MustParseUint(ctx.Param("id")), user.UserID, &model.Class{
		Name:       req.Name,
		Grade:      req.Grade,
		SchoolYear: req.SchoolYear,
	})
	if err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, class)
}

// @Summary Delete a class
// @Tags classes
// @Security BearerAuth
// @Produce json
// @Param id path int true "class id"
// @Success 200 {object} util.Response
// @Router /api/teacher/classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ClassService.DeleteClass(util.MustParseUint(ctx.Param("id")), user.UserID); err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary List the class roster
// @Tags classes
// @Security BearerAuth
// @Produce json
// @Param id path int true "class id"
// @Success 200 {object} util.Response
// @Router /api/teacher/classes/{id}/students [get]
func (c *ClassController) ListRoster(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	students, err := c.ClassService.ListRoster(util.MustParseUint(ctx.Param("id")), user.UserID)
	if err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, students)
}

// @Summary Add a student to the roster
// @Tags classes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "class id"
// @Param body body addStudentRequest true "student nickname"
// @Success 201 {object} util.Response
// @Router /api/teacher/classes/{id}/students [post]
func (c *ClassController) AddStudent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req addStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.ClassService.AddStudent(util.MustParseUint(ctx.Param("id")), user.UserID, req.Nickname)
	if err != nil {
		classError(ctx, err)
		return
	}

	util.Created(ctx, student)
}

// @Summary Remove a student from the roster
// @Tags classes
// @Security BearerAuth
// @Produce json
// @Param id path int true "class id"
// @Param studentId path int true "student id"
// @Success 200 {object} util.Response
// @Router /api/teacher/classes/{id}/students/{studentId} [delete]
func (c *ClassController) RemoveStudent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.ClassService.RemoveStudent(
		util.MustParseUint(ctx.Param("id")),
		user.UserID,
		util.MustParseUint(ctx.Param("studentId")),
	)
	if err != nil {
		classError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
