package handlers

import (
	"net/http"

	"supermock_backend/internal/middleware"
	"supermock_backend/internal/services"
	"supermock_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	*BaseHandler
	cardService services.CardService
}

func NewCardHandler(base *BaseHandler, cardService services.CardService) *CardHandler {
	return &CardHandler{
		BaseHandler: base,
		cardService: cardService,
	}
}

// RegisterRoutes регистрирует маршруты карточек. Список и просмотр
// открыты без токена, остальное требует аутентификации.
func (h *CardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cards := rg.Group("/cards")
	{
		cards.GET("", h.List)
		cards.GET("/:id", h.GetByID)
	}

	authCards := rg.Group("/cards")
	authCards.Use(middleware.AuthMiddleware())
	{
		authCards.POST("", h.Create)
		authCards.PATCH("/:id", h.Update)
		authCards.DELETE("/:id", h.Delete)
	}
}

func (h *CardHandler) Create(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	card, err := h.cardService.Create(actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) List(c *gin.Context) {
	var query dto.CardListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	cards, err := h.cardService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) GetByID(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	card, err := h.cardService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) Update(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	card, err := h.cardService.Update(actor, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) Delete(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.cardService.Delete(actor, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted"})
}
