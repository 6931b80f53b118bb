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

// RoomController handles room inventory
type RoomController struct {
	roomService *services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

// CreateRoom adds a room to a hostel
// @Summary Create a room
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Hostel ID"
// @Param request body dto.CreateRoomRequest true "Room data"
// @Success 201 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 409 {object} dto.ErrorResponse "Room number already in use"
// @Router /hostel/hostels/{id}/rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	hostelID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if !bindJSON(ctx, &req) {
		return
	}

	room, err := c.roomService.CreateRoom(ctx, actor, hostelID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(room, "Room created"))
}

// GetRoomByID returns one room
// @Summary Get room details
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /hostel/rooms/{id} [get]
func (c *RoomController) GetRoomByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	room, err := c.roomService.GetRoomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room, "Room retrieved"))
}

// ListRooms lists rooms with optional filters
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param hostelId query int false "Hostel ID"
// @Param roomType query string false "Room type" Enums(single, double, triple, dormitory)
// @Param availableOnly query bool false "Only rooms with free beds"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.RoomListResponse}
// @Router /hostel/rooms [get]
func (c *RoomController) ListRooms(ctx *gin.Context) {
	availableOnly, _ := strconv.ParseBool(ctx.Query("availableOnly"))
	filter := repositories.RoomFilter{
		HostelID:      queryInt64(ctx, "hostelId"),
		RoomType:      ctx.Query("roomType"),
		AvailableOnly: availableOnly,
		Page:          queryInt(ctx, "page", 1),
		PageSize:      queryInt(ctx, "pageSize", 10),
	}

	rooms, err := c.roomService.ListRooms(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rooms, "Rooms retrieved"))
}

// UpdateRoom updates a room's descriptive fields
// @Summary Update a room
// @Tags rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Room data"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 409 {object} dto.ErrorResponse "Capacity below current occupancy"
// @Router /hostel/rooms/{id} [put]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if !bindJSON(ctx, &req) {
		return
	}

	room, err := c.roomService.UpdateRoom(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room, "Room updated"))
}

// DeleteRoom removes an empty, never-allocated room
// @Summary Delete a room
// @Tags rooms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.ErrorResponse "Room has allocation history"
// @Router /hostel/rooms/{id} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.roomService.DeleteRoom(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Room deleted"}, "Room deleted"))
}
