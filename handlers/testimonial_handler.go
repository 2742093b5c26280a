package handlers

import (
	"portfolio-api/helper"
	"portfolio-api/models"
	"portfolio-api/services"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialService services.TestimonialService
	Helper             *helper.HTTPHelper
}

func NewTestimonialHandler(testimonialService services.TestimonialService, h *helper.HTTPHelper) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService, Helper: h}
}

// GetPublicTestimonials lists approved testimonials only.
func (h *TestimonialHandler) GetPublicTestimonials(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "invalid query")
		return
	}

	records, err := h.testimonialService.ListPublic(c.Request.Context(), params.UserID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.Render(records, models.NewTestimonialResponse))
}

func (h *TestimonialHandler) GetTestimonials(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "invalid query")
		return
	}

	records, err := h.testimonialService.ListAll(c.Request.Context(), params.UserID, params.Status)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.Render(records, models.NewTestimonialResponse))
}

func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	record, err := h.testimonialService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewTestimonialResponse(record))
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	record, err := h.testimonialService.Create(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, models.NewTestimonialResponse(record))
}

func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	record, err := h.testimonialService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewTestimonialResponse(record))
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.testimonialService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}

func (h *TestimonialHandler) ApproveTestimonial(c *gin.Context) {
	record, err := h.testimonialService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewTestimonialResponse(record))
}

func (h *TestimonialHandler) RejectTestimonial(c *gin.Context) {
	record, err := h.testimonialService.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewTestimonialResponse(record))
}
