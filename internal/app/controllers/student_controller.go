package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/middleware"
)

// StudentController handles student profile endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetStudentByID returns one student profile
// @Summary Get student details
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student retrieved"))
}

// ListStudents lists the students of an institute (staff only)
// @Summary List students
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param instituteId query int false "Institute ID (defaults to the caller's institute)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	instituteID := queryInt64(ctx, "instituteId")
	page := queryInt(ctx, "page", 1)
	pageSize := queryInt(ctx, "pageSize", 10)

	students, err := c.studentService.ListStudents(ctx, actor, instituteID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, "Students retrieved"))
}

// UpdateProfile updates the caller's own student profile
// @Summary Update own student profile
// @Tags students
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateStudentProfileRequest true "Profile data"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Router /students/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateProfile(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Profile updated"))
}
