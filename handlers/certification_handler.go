package handlers

import (
	"portfolio-api/helper"
	"portfolio-api/models"
	"portfolio-api/services"

	"github.com/gin-gonic/gin"
)

type CertificationHandler struct {
	certificationService services.CertificationService
	Helper               *helper.HTTPHelper
}

func NewCertificationHandler(certificationService services.CertificationService, h *helper.HTTPHelper) *CertificationHandler {
	return &CertificationHandler{certificationService: certificationService, Helper: h}
}

func (h *CertificationHandler) GetCertifications(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "invalid query")
		return
	}

	records, err := h.certificationService.List(c.Request.Context(), params.UserID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.Render(records, models.NewCertificationResponse))
}

func (h *CertificationHandler) GetCertification(c *gin.Context) {
	record, err := h.certificationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewCertificationResponse(record))
}

func (h *CertificationHandler) CreateCertification(c *gin.Context) {
	var req models.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	record, err := h.certificationService.Create(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, models.NewCertificationResponse(record))
}

func (h *CertificationHandler) UpdateCertification(c *gin.Context) {
	var req models.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	record, err := h.certificationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewCertificationResponse(record))
}

func (h *CertificationHandler) DeleteCertification(c *gin.Context) {
	if err := h.certificationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}
