package handlers

import (
	"portfolio-api/helper"
	"portfolio-api/models"
	"portfolio-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

// GetPublicArticles lists published articles and projects, optionally filtered by kind.
func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "invalid query")
		return
	}

	articles, err := h.articleService.ListPublic(c.Request.Context(), params.UserID, params.Kind)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.Render(articles, models.NewArticleResponse))
}

func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "invalid query")
		return
	}

	article, err := h.articleService.GetPublicBySlug(c.Request.Context(), params.UserID, c.Param("slug"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewArticleResponse(article))
}

// GetArticles includes drafts.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "invalid query")
		return
	}

	articles, err := h.articleService.ListAll(c.Request.Context(), params.UserID, params.Kind)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.Render(articles, models.NewArticleResponse))
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewArticleResponse(article))
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, models.NewArticleResponse(article))
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req models.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.NewArticleResponse(article))
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}
