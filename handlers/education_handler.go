package handlers

import (
	"portfolio-api/helper"
	"portfolio-api/models"
	"portfolio-api/services"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationService services.EducationService
	Helper           *helper.HTTPHelper
}

func NewEducationHandler(educationService services.EducationService, h *helper.HTTPHelper) *EducationHandler {
	return &EducationHandler{educationService: educationService, Helper: h}
}

func (h *EducationHandler) GetEducations(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "invalid query")
		return
	}

	records, err := h.educationService.List(c.Request.Context(), params.UserID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.Render(records, models.NewEducationResponse))
}

func (h *EducationHandler) GetEducation(c *gin.Context) {
	record, err := h.educationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewEducationResponse(record))
}

func (h *EducationHandler) CreateEducation(c *gin.Context) {
	var req models.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	record, err := h.educationService.Create(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, models.NewEducationResponse(record))
}

func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	var req models.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	record, err := h.educationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewEducationResponse(record))
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	if err := h.educationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}
