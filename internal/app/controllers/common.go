package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/middleware"
)

// parseIDParam reads a positive integer path parameter. On failure it writes
// the 400 response itself and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindJSON binds and validates the request body. On failure it writes the
// 400 response itself and returns false.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// actorFrom reads the authenticated caller set by the auth middleware. On
// failure it writes the 401 response itself and returns false.
func actorFrom(ctx *gin.Context) (services.Actor, bool) {
	actor, ok := middleware.CurrentActor(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return services.Actor{}, false
	}
	return actor, true
}

// queryInt64 reads an optional integer query parameter, returning 0 when
// absent or malformed.
func queryInt64(ctx *gin.Context, name string) int64 {
	value, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// queryInt reads an optional integer query parameter with a default.
func queryInt(ctx *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(ctx.Query(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
