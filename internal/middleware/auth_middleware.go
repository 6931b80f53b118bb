package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextEmail    = "email"
	ContextRoleType = "roleType"
)

// AuthMiddleware handles authentication and role checks
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and puts the caller's identity on the
// request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			} else if errors.Is(err, auth.ErrInvalidFormat) {
				errorDetails = "Invalid token format"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			errorDetail = errorDetail.WithSeverity(dto.ErrorSeverityError)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRoleType, claims.RoleType)

		c.Next()
	}
}

// RoleRequired allows only the listed roles past. It assumes JWTAuth has
// already run.
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRoleType)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		roleStr, ok := role.(string)
		if ok {
			for _, allowed := range roles {
				if roleStr == string(allowed) {
					c.Next()
					return
				}
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
		errorDetail = errorDetail.WithSeverity(dto.ErrorSeverityError)
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// StaffRequired allows managers, directors and admins.
func (m *AuthMiddleware) StaffRequired() gin.HandlerFunc {
	return m.RoleRequired(models.RoleManager, models.RoleDirector, models.RoleAdmin)
}

// CurrentActor reads the authenticated caller from the gin context. The
// second return is false when JWTAuth did not run on this route.
func CurrentActor(c *gin.Context) (services.Actor, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return services.Actor{}, false
	}
	userIDInt, ok := userID.(int64)
	if !ok {
		return services.Actor{}, false
	}
	role, _ := c.Get(ContextRoleType)
	roleStr, _ := role.(string)
	return services.Actor{UserID: userIDInt, Role: models.RoleType(roleStr)}, true
}
