package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/middleware"
)

// DirectorController handles director and institute registration
type DirectorController struct {
	directorService *services.DirectorService
}

// NewDirectorController creates a new DirectorController
func NewDirectorController(directorService *services.DirectorService) *DirectorController {
	return &DirectorController{directorService: directorService}
}

// RegisterDirector creates an institute together with its director account
// @Summary Register an institute and its director
// @Description Creates the institute, the director's user account and the director profile in one transaction. The account is active immediately.
// @Tags director
// @Accept json
// @Produce json
// @Param request body dto.RegisterDirectorRequest true "Director and institute data"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterDirectorResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email or institute name already in use"
// @Router /director/register [post]
func (c *DirectorController) RegisterDirector(ctx *gin.Context) {
	var req dto.RegisterDirectorRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.directorService.RegisterDirector(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp, "Institute and director registered"))
}
