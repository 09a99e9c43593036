package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nctu-sis/portal-api/internal/service"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
	"github.com/nctu-sis/portal-api/pkg/response"
)

// NewsHandler exposes the announcement feed.
type NewsHandler struct {
	news *service.NewsService
}

// NewNewsHandler constructs NewsHandler.
func NewNewsHandler(news *service.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// Feed godoc
// @Summary Announcement feed
// @Description Announcements, most recent first
// @Tags News
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /news [get]
func (h *NewsHandler) Feed(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.news.Feed(c.Request.Context()))
}

// Post godoc
// @Summary Publish an announcement
// @Tags News
// @Accept json
// @Produce json
// @Param payload body service.PostNewsRequest true "Announcement payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /news [post]
func (h *NewsHandler) Post(c *gin.Context) {
	var req service.PostNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid news payload"))
		return
	}

	post, err := h.news.Post(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}
