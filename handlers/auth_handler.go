package handlers

import (
	"net/http"
	"time"

	"portfolio-api/helper"
	"portfolio-api/middleware"
	"portfolio-api/models"
	"portfolio-api/services"

	"github.com/gin-gonic/gin"
)

// CookieConfig describes the httpOnly cookie set at login. The API itself
// only reads the Authorization header.
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
	cookie      CookieConfig
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h, cookie: cookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, gin.H{"user": models.NewUserResponse(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.setCookie(c, response.Token, int(h.cookie.MaxAge.Seconds()))
	h.Helper.SendSuccess(c, response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	h.Helper.SendSuccess(c, gin.H{"success": true})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	token := middleware.BearerToken(c.GetHeader("Authorization"))
	if token == "" {
		h.Helper.SendError(c, models.ErrorMissingToken{})
		return
	}

	user, err := h.authService.Verify(c.Request.Context(), token)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"valid": true, "user": models.NewUserResponse(user)})
}

func (h *AuthHandler) FirstAdminUser(c *gin.Context) {
	user, err := h.authService.FirstAdmin(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"success": true, "user": models.NewUserResponse(user)})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		h.Helper.SendError(c, models.ErrorMissingToken{})
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), identity.ID, req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"success": true})
}

func (h *AuthHandler) DevLogin(c *gin.Context) {
	response, err := h.authService.DevLogin(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.setCookie(c, response.Token, int(h.cookie.MaxAge.Seconds()))
	h.Helper.SendSuccess(c, response)
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
