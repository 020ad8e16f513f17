package handler

import (
	"net/http"

	"github.com/entnt/dentalcare-server/internal/api/http/middleware"
	"github.com/entnt/dentalcare-server/internal/api/http/response"
	"github.com/entnt/dentalcare-server/internal/logger"
	"github.com/entnt/dentalcare-server/internal/model"
	"github.com/entnt/dentalcare-server/internal/service"
	"github.com/gin-gonic/gin"
)

// Auth serves login, logout and profile endpoints.
type Auth struct {
	clinic *service.Clinic
	tokens model.TokenManager
	logger *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(clinic *service.Clinic, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{clinic: clinic, tokens: tokens, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates credentials against the clinic store and returns a
// bearer token with the user profile.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, http.StatusBadRequest, false, "invalid request body", nil)
		return
	}

	user, err := h.clinic.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	tokenString, err := h.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		h.logger.Error("failed to generate token", "user_id", user.ID, "error", err.Error())
		response.JSON(c, http.StatusInternalServerError, false, "internal server error", nil)
		return
	}

	response.JSON(c, http.StatusOK, true, "login successful", gin.H{
		"token": tokenString,
		"user":  sanitize(user),
	})
}

// Logout clears the active session.
func (h *Auth) Logout(c *gin.Context) {
	if err := h.clinic.Logout(c.Request.Context()); err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, true, "logged out", nil)
}

// Profile returns the authenticated caller.
func (h *Auth) Profile(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.JSON(c, http.StatusUnauthorized, false, "not authenticated", nil)
		return
	}
	response.JSON(c, http.StatusOK, true, "profile", sanitize(caller))
}

// sanitize strips credentials before a user leaves the API.
func sanitize(u model.User) model.User {
	u.Password = ""
	return u
}
