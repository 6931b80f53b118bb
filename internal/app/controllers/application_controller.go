package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/middleware"
)

// ApplicationController handles hostel applications
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// SubmitApplication files an application for the calling student
// @Summary Submit a hostel application
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Application data"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 409 {object} dto.ErrorResponse "An open application or active allocation already exists"
// @Router /hostel/applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	application, err := c.applicationService.SubmitApplication(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application, "Application submitted"))
}

// GetApplicationByID returns one application
// @Summary Get application details
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /hostel/applications/{id} [get]
func (c *ApplicationController) GetApplicationByID(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.applicationService.GetApplicationByID(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application, "Application retrieved"))
}

// ListApplications lists applications visible to the caller
// @Summary List applications
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter" Enums(pending, approved, rejected, cancelled, waitlisted)
// @Param hostelId query int false "Preferred hostel filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse}
// @Router /hostel/applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	filter := repositories.ApplicationFilter{
		HostelID: queryInt64(ctx, "hostelId"),
		Status:   ctx.Query("status"),
		Page:     queryInt(ctx, "page", 1),
		PageSize: queryInt(ctx, "pageSize", 10),
	}

	applications, err := c.applicationService.ListApplications(ctx, actor, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications, "Applications retrieved"))
}

// ReviewApplication records a staff decision
// @Summary Review an application
// @Description Moves a pending application to approved, rejected or waitlisted, or a waitlisted one to approved or rejected.
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 409 {object} dto.ErrorResponse "Transition not permitted"
// @Router /hostel/applications/{id}/status [patch]
func (c *ApplicationController) ReviewApplication(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	application, err := c.applicationService.ReviewApplication(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application, "Application reviewed"))
}

// CancelApplication withdraws the caller's own application
// @Summary Cancel own application
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 409 {object} dto.ErrorResponse "Application can no longer be cancelled"
// @Router /hostel/applications/{id}/cancel [post]
func (c *ApplicationController) CancelApplication(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.applicationService.CancelApplication(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application, "Application cancelled"))
}
