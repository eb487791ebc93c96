package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/http/middleware"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (h Handler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := h.auth(c).Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// POST /api/auth/login
func (h Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	result, err := h.auth(c).Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/auth/profile
func (h Handler) Profile(c *gin.Context) {
	user, err := h.auth(c).Profile(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// PUT /api/auth/profile
func (h Handler) UpdateProfile(c *gin.Context) {
	var req services.ProfileUpdateInput
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := h.auth(c).UpdateProfile(middleware.GetUserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// POST /api/auth/upgrade
func (h Handler) Upgrade(c *gin.Context) {
	user, err := h.auth(c).UpgradeToFrequentFlyer(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
