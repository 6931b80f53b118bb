package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/middleware"
)

// AllocationController handles room allocations
type AllocationController struct {
	allocationService *services.AllocationService
}

// NewAllocationController creates a new AllocationController
func NewAllocationController(allocationService *services.AllocationService) *AllocationController {
	return &AllocationController{allocationService: allocationService}
}

// Allocate assigns a student to a room
// @Summary Allocate a room
// @Description Assigns a student to a room, re-validating capacity and exclusivity inside one transaction.
// @Tags allocations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAllocationRequest true "Allocation data"
// @Success 201 {object} dto.APIResponse{data=dto.AllocationResponse}
// @Failure 409 {object} dto.ErrorResponse "Room full, student already allocated, or application already linked"
// @Router /hostel/allocations [post]
func (c *AllocationController) Allocate(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req dto.CreateAllocationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	allocation, err := c.allocationService.Allocate(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(allocation, "Room allocated"))
}

// GetAllocationByID returns one allocation
// @Summary Get allocation details
// @Tags allocations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Allocation ID"
// @Success 200 {object} dto.APIResponse{data=dto.AllocationResponse}
// @Failure 404 {object} dto.ErrorResponse "Allocation not found"
// @Router /hostel/allocations/{id} [get]
func (c *AllocationController) GetAllocationByID(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	allocation, err := c.allocationService.GetAllocationByID(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(allocation, "Allocation retrieved"))
}

// ListAllocations lists allocations with optional filters
// @Summary List allocations
// @Tags allocations
// @Security BearerAuth
// @Produce json
// @Param hostelId query int false "Hostel filter"
// @Param roomId query int false "Room filter"
// @Param studentId query int false "Student filter"
// @Param activeOnly query bool false "Only active allocations"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.AllocationListResponse}
// @Router /hostel/allocations [get]
func (c *AllocationController) ListAllocations(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	activeOnly, _ := strconv.ParseBool(ctx.Query("activeOnly"))
	filter := repositories.AllocationFilter{
		HostelID:   queryInt64(ctx, "hostelId"),
		RoomID:     queryInt64(ctx, "roomId"),
		StudentID:  queryInt64(ctx, "studentId"),
		ActiveOnly: activeOnly,
		Page:       queryInt(ctx, "page", 1),
		PageSize:   queryInt(ctx, "pageSize", 10),
	}

	allocations, err := c.allocationService.ListAllocations(ctx, actor, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(allocations, "Allocations retrieved"))
}

// Deallocate closes an allocation
// @Summary Deallocate a room
// @Description Sets the allocation's end date. The allocation row is kept for history.
// @Tags allocations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Allocation ID"
// @Param request body dto.DeallocateRequest true "End date, defaults to today"
// @Success 200 {object} dto.APIResponse{data=dto.AllocationResponse}
// @Failure 409 {object} dto.ErrorResponse "Allocation already closed"
// @Router /hostel/allocations/{id}/deallocate [post]
func (c *AllocationController) Deallocate(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.DeallocateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	allocation, err := c.allocationService.Deallocate(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(allocation, "Room deallocated"))
}
