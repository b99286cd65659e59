package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhufei/sports-backend/internal/middleware"
	"github.com/zhufei/sports-backend/internal/model"
	"github.com/zhufei/sports-backend/internal/response"
	"github.com/zhufei/sports-backend/internal/service"
	"github.com/zhufei/sports-backend/internal/validation"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService  *service.AuthService
	adminService *service.AdminService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, adminService *service.AdminService) *AuthHandler {
	return &AuthHandler{authService: authService, adminService: adminService}
}

// Login godoc
// POST /api/auth/login
// Validates username + password and returns a signed token with the admin
// profile. Unknown users and wrong passwords fail identically.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgInvalidInput)
		return
	}

	if ok, errs := validation.ValidateLogin(&req); !ok {
		response.FailValidation(c, http.StatusBadRequest, response.MsgInvalidInput, errs)
		return
	}

	admin, err := h.adminService.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.Fail(c, http.StatusUnauthorized, response.MsgInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	if err := h.authService.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.MsgInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(admin.ID, admin.Username, admin.Name)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"admin": admin.Profile(),
	})
}

// Me godoc
// GET /api/auth/me
// Returns the profile of the currently authenticated admin. The admin row
// is re-read so a deleted account reports 404 even with a live token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.MsgTokenRequired)
		return
	}

	admin, err := h.adminService.GetByID(c.Request.Context(), claims.AdminID)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.Fail(c, http.StatusNotFound, response.MsgAdminNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}
