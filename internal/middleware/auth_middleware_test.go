package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/pkg/auth"
)

func newTestAuthMiddleware(accessExp time.Duration) (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "hostelmate-test",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	user := &models.User{ID: 7, Email: "user@institute.edu", RoleType: role}
	token, _, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)
	return token
}

func setupAuthRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{m.JWTAuth()}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID, "role": string(actor.Role)})
	})

	router.GET("/protected", handlers...)
	return router
}

func TestJWTAuthValidToken(t *testing.T) {
	m, jwtService := newTestAuthMiddleware(time.Hour)
	router := setupAuthRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"userId":7`)
	assert.Contains(t, recorder.Body.String(), `"role":"STUDENT"`)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware(time.Hour)
	router := setupAuthRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	m, jwtService := newTestAuthMiddleware(-time.Minute)
	router := setupAuthRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "expired")
}

func TestJWTAuthGarbageToken(t *testing.T) {
	m, _ := newTestAuthMiddleware(time.Hour)
	router := setupAuthRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRoleRequired(t *testing.T) {
	m, jwtService := newTestAuthMiddleware(time.Hour)
	router := setupAuthRouter(m, m.RoleRequired(models.RoleDirector, models.RoleAdmin))

	tests := []struct {
		role   models.RoleType
		status int
	}{
		{models.RoleDirector, http.StatusOK},
		{models.RoleAdmin, http.StatusOK},
		{models.RoleManager, http.StatusForbidden},
		{models.RoleStudent, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, tt.role))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

func TestStaffRequired(t *testing.T) {
	m, jwtService := newTestAuthMiddleware(time.Hour)
	router := setupAuthRouter(m, m.StaffRequired())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleManager))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
