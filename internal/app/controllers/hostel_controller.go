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

// HostelController handles hostel inventory and images
type HostelController struct {
	hostelService *services.HostelService
}

// NewHostelController creates a new HostelController
func NewHostelController(hostelService *services.HostelService) *HostelController {
	return &HostelController{hostelService: hostelService}
}

// CreateHostel creates a hostel
// @Summary Create a hostel
// @Tags hostels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param instituteId query int false "Institute ID (defaults to the caller's institute)"
// @Param request body dto.CreateHostelRequest true "Hostel data"
// @Success 201 {object} dto.APIResponse{data=dto.HostelResponse}
// @Failure 409 {object} dto.ErrorResponse "Hostel name already in use"
// @Router /hostel/hostels [post]
func (c *HostelController) CreateHostel(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req dto.CreateHostelRequest
	if !bindJSON(ctx, &req) {
		return
	}

	hostel, err := c.hostelService.CreateHostel(ctx, actor, queryInt64(ctx, "instituteId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(hostel, "Hostel created"))
}

// GetHostelByID returns one hostel with its images
// @Summary Get hostel details
// @Tags hostels
// @Produce json
// @Param id path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=dto.HostelResponse}
// @Failure 404 {object} dto.ErrorResponse "Hostel not found"
// @Router /hostel/hostels/{id} [get]
func (c *HostelController) GetHostelByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	hostel, err := c.hostelService.GetHostelByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(hostel, "Hostel retrieved"))
}

// ListHostels lists hostels with optional filters
// @Summary List hostels
// @Tags hostels
// @Produce json
// @Param instituteId query int false "Institute ID"
// @Param hostelType query string false "Hostel type" Enums(boys, girls, mixed)
// @Param city query string false "City filter"
// @Param activeOnly query bool false "Only active hostels"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.HostelListResponse}
// @Router /hostel/hostels [get]
func (c *HostelController) ListHostels(ctx *gin.Context) {
	activeOnly, _ := strconv.ParseBool(ctx.Query("activeOnly"))
	filter := repositories.HostelFilter{
		InstituteID: queryInt64(ctx, "instituteId"),
		HostelType:  ctx.Query("hostelType"),
		City:        ctx.Query("city"),
		ActiveOnly:  activeOnly,
		Page:        queryInt(ctx, "page", 1),
		PageSize:    queryInt(ctx, "pageSize", 10),
	}

	hostels, err := c.hostelService.ListHostels(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(hostels, "Hostels retrieved"))
}

// UpdateHostel updates a hostel
// @Summary Update a hostel
// @Tags hostels
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Hostel ID"
// @Param request body dto.UpdateHostelRequest true "Hostel data"
// @Success 200 {object} dto.APIResponse{data=dto.HostelResponse}
// @Router /hostel/hostels/{id} [put]
func (c *HostelController) UpdateHostel(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateHostelRequest
	if !bindJSON(ctx, &req) {
		return
	}

	hostel, err := c.hostelService.UpdateHostel(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(hostel, "Hostel updated"))
}

// UploadImage stores a hostel photograph
// @Summary Upload a hostel image
// @Tags hostels
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Hostel ID"
// @Param image formData file true "Image file (jpg, png or webp, max 5MB)"
// @Param caption formData string false "Caption"
// @Param isPrimary formData bool false "Mark as the primary image"
// @Success 201 {object} dto.APIResponse{data=dto.HostelImageResponse}
// @Failure 400 {object} dto.ErrorResponse "Unsupported file type or size"
// @Router /hostel/hostels/{id}/images [post]
func (c *HostelController) UploadImage(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Image file required")
		errorDetail = errorDetail.WithDetails("Send the file in the 'image' form field")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var caption *string
	if value := ctx.PostForm("caption"); value != "" {
		caption = &value
	}
	isPrimary, _ := strconv.ParseBool(ctx.PostForm("isPrimary"))

	image, err := c.hostelService.AddHostelImage(ctx, actor, id, fileHeader, caption, isPrimary)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(image, "Image uploaded"))
}

// DeleteImage removes a hostel photograph
// @Summary Delete a hostel image
// @Tags hostels
// @Security BearerAuth
// @Produce json
// @Param id path int true "Hostel ID"
// @Param imageId path int true "Image ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /hostel/hostels/{id}/images/{imageId} [delete]
func (c *HostelController) DeleteImage(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	imageID, ok := parseIDParam(ctx, "imageId")
	if !ok {
		return
	}

	if err := c.hostelService.DeleteHostelImage(ctx, actor, id, imageID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Image deleted"}, "Image deleted"))
}
