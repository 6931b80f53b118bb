package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/middleware"
)

// InstituteController handles institutes, courses and branches
type InstituteController struct {
	instituteService *services.InstituteService
	courseService    *services.CourseService
}

// NewInstituteController creates a new InstituteController
func NewInstituteController(instituteService *services.InstituteService, courseService *services.CourseService) *InstituteController {
	return &InstituteController{
		instituteService: instituteService,
		courseService:    courseService,
	}
}

// GetAllInstitutes lists every institute. Public, so the registration form
// can offer a picker.
// @Summary List institutes
// @Tags institutes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstituteResponse}
// @Router /institutes [get]
func (c *InstituteController) GetAllInstitutes(ctx *gin.Context) {
	institutes, err := c.instituteService.GetAllInstitutes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.InstituteResponse, 0, len(institutes))
	for _, institute := range institutes {
		resp = append(resp, dto.FromInstitute(institute))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Institutes retrieved"))
}

// GetInstituteByID returns one institute
// @Summary Get institute details
// @Tags institutes
// @Produce json
// @Param id path int true "Institute ID"
// @Success 200 {object} dto.APIResponse{data=dto.InstituteResponse}
// @Failure 404 {object} dto.ErrorResponse "Institute not found"
// @Router /institutes/{id} [get]
func (c *InstituteController) GetInstituteByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	institute, err := c.instituteService.GetInstituteByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromInstitute(institute), "Institute retrieved"))
}

// CreateInstitute creates an institute without a director (admin only)
// @Summary Create an institute
// @Tags institutes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInstituteRequest true "Institute data"
// @Success 201 {object} dto.APIResponse{data=dto.InstituteResponse}
// @Failure 409 {object} dto.ErrorResponse "Institute name already in use"
// @Router /institutes [post]
func (c *InstituteController) CreateInstitute(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req dto.CreateInstituteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	institute, err := c.instituteService.CreateInstitute(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromInstitute(institute), "Institute created"))
}

// UpdateInstitute updates an institute's details
// @Summary Update an institute
// @Tags institutes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Institute ID"
// @Param request body dto.UpdateInstituteRequest true "Institute data"
// @Success 200 {object} dto.APIResponse{data=dto.InstituteResponse}
// @Failure 403 {object} dto.ErrorResponse "Not the institute's director or an admin"
// @Router /institutes/{id} [put]
func (c *InstituteController) UpdateInstitute(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInstituteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	institute, err := c.instituteService.UpdateInstitute(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromInstitute(institute), "Institute updated"))
}

// GetCourses lists the courses of an institute
// @Summary List courses of an institute
// @Tags courses
// @Produce json
// @Param id path int true "Institute ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Router /institutes/{id}/courses [get]
func (c *InstituteController) GetCourses(ctx *gin.Context) {
	instituteID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesByInstitute(ctx, instituteID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.FromCourse(course))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Courses retrieved"))
}

// CreateCourse adds a course to an institute
// @Summary Create a course
// @Tags courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Institute ID"
// @Param request body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 409 {object} dto.ErrorResponse "Course code already in use"
// @Router /institutes/{id}/courses [post]
func (c *InstituteController) CreateCourse(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	instituteID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx, actor, instituteID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromCourse(course), "Course created"))
}

// GetCourseByID returns one course
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Router /courses/{id} [get]
func (c *InstituteController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course), "Course retrieved"))
}

// UpdateCourse updates a course
// @Summary Update a course
// @Tags courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course data"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Router /courses/{id} [put]
func (c *InstituteController) UpdateCourse(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(course), "Course updated"))
}

// DeleteCourse removes a course with no dependent rows
// @Summary Delete a course
// @Tags courses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.ErrorResponse "Course is referenced by students or applications"
// @Router /courses/{id} [delete]
func (c *InstituteController) DeleteCourse(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted"}, "Course deleted"))
}

// GetBranches lists the branches of a course
// @Summary List branches of a course
// @Tags branches
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.BranchResponse}
// @Router /courses/{id}/branches [get]
func (c *InstituteController) GetBranches(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	branches, err := c.courseService.GetBranchesByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.BranchResponse, 0, len(branches))
	for _, branch := range branches {
		resp = append(resp, dto.FromBranch(branch))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Branches retrieved"))
}

// CreateBranch adds a branch to a course
// @Summary Create a branch
// @Tags branches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.CreateBranchRequest true "Branch data"
// @Success 201 {object} dto.APIResponse{data=dto.BranchResponse}
// @Router /courses/{id}/branches [post]
func (c *InstituteController) CreateBranch(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateBranchRequest
	if !bindJSON(ctx, &req) {
		return
	}

	branch, err := c.courseService.CreateBranch(ctx, actor, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromBranch(branch), "Branch created"))
}

// GetBranchByID returns one branch
func (c *InstituteController) GetBranchByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	branch, err := c.courseService.GetBranchByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromBranch(branch), "Branch retrieved"))
}

// UpdateBranch updates a branch
func (c *InstituteController) UpdateBranch(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBranchRequest
	if !bindJSON(ctx, &req) {
		return
	}

	branch, err := c.courseService.UpdateBranch(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromBranch(branch), "Branch updated"))
}

// DeleteBranch removes a branch with no dependent rows
func (c *InstituteController) DeleteBranch(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteBranch(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Branch deleted"}, "Branch deleted"))
}
