package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/middleware"
)

// ManagerController handles hostel manager accounts and assignments
type ManagerController struct {
	managerService *services.ManagerService
}

// NewManagerController creates a new ManagerController
func NewManagerController(managerService *services.ManagerService) *ManagerController {
	return &ManagerController{managerService: managerService}
}

// CreateManager creates a manager account
// @Summary Create a hostel manager
// @Description Creates an active manager account and profile, optionally assigned to a hostel.
// @Tags managers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param instituteId query int false "Institute ID (defaults to the caller's institute)"
// @Param request body dto.CreateManagerRequest true "Manager data"
// @Success 201 {object} dto.APIResponse{data=dto.ManagerResponse}
// @Failure 409 {object} dto.ErrorResponse "Email in use or hostel already managed"
// @Router /hostel/managers [post]
func (c *ManagerController) CreateManager(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req dto.CreateManagerRequest
	if !bindJSON(ctx, &req) {
		return
	}

	manager, err := c.managerService.CreateManager(ctx, actor, queryInt64(ctx, "instituteId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(manager, "Manager created"))
}

// GetManagerByID returns one manager
// @Summary Get manager details
// @Tags managers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Manager ID"
// @Success 200 {object} dto.APIResponse{data=dto.ManagerResponse}
// @Router /hostel/managers/{id} [get]
func (c *ManagerController) GetManagerByID(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	manager, err := c.managerService.GetManagerByID(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(manager, "Manager retrieved"))
}

// ListManagers lists an institute's managers
// @Summary List managers
// @Tags managers
// @Security BearerAuth
// @Produce json
// @Param instituteId query int false "Institute ID (defaults to the caller's institute)"
// @Success 200 {object} dto.APIResponse{data=[]dto.ManagerResponse}
// @Router /hostel/managers [get]
func (c *ManagerController) ListManagers(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	managers, err := c.managerService.ListManagers(ctx, actor, queryInt64(ctx, "instituteId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(managers, "Managers retrieved"))
}

// AssignHostel moves a manager to a hostel, or unassigns with a null hostel
// @Summary Assign a manager to a hostel
// @Tags managers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Manager ID"
// @Param request body dto.AssignManagerRequest true "Target hostel, or null to unassign"
// @Success 200 {object} dto.APIResponse{data=dto.ManagerResponse}
// @Failure 409 {object} dto.ErrorResponse "Hostel already has a manager"
// @Router /hostel/managers/{id}/assign [post]
func (c *ManagerController) AssignHostel(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignManagerRequest
	if !bindJSON(ctx, &req) {
		return
	}

	manager, err := c.managerService.AssignHostel(ctx, actor, id, req.HostelID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(manager, "Manager assignment updated"))
}

// EndAssignment closes a manager's tenure
// @Summary End a manager's assignment
// @Tags managers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Manager ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /hostel/managers/{id} [delete]
func (c *ManagerController) EndAssignment(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.managerService.EndAssignment(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Manager assignment ended"}, "Manager assignment ended"))
}
