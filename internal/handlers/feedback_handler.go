package handlers

import (
	"net/http"

	"supermock_backend/internal/middleware"
	"supermock_backend/internal/services"
	"supermock_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(base *BaseHandler, feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     base,
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	feedback := rg.Group("/feedback")
	feedback.Use(middleware.AuthMiddleware())
	{
		feedback.POST("", h.Create)
		feedback.GET("", h.List)
	}
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateFeedbackRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	feedback, err := h.feedbackService.Create(actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

func (h *FeedbackHandler) List(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	var query dto.FeedbackListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	feedbacks, err := h.feedbackService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedbacks)
}
