package handlers

import (
	"portfolio-api/helper"
	"portfolio-api/middleware"
	"portfolio-api/models"
	"portfolio-api/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService services.ProfileService
	Helper         *helper.HTTPHelper
}

func NewProfileHandler(profileService services.ProfileService, h *helper.HTTPHelper) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, Helper: h}
}

// GetProfile serves /profile/:id; the id may be the dynamic admin sentinel.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.profileService.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"profile": models.NewProfileResponse(user)})
}

func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		h.Helper.SendError(c, models.ErrorMissingToken{})
		return
	}

	user, err := h.profileService.GetOwn(c.Request.Context(), identity.ID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"profile": models.NewProfileResponse(user)})
}

func (h *ProfileHandler) UpdateOwnProfile(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		h.Helper.SendError(c, models.ErrorMissingToken{})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	user, err := h.profileService.Update(c.Request.Context(), identity.ID, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"profile": models.NewProfileResponse(user)})
}
