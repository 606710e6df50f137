package handlers

import (
	"fmt"
	"net/http"
	"time"

	"supermock_backend/internal/calendar"
	"supermock_backend/internal/middleware"
	"supermock_backend/internal/models"
	"supermock_backend/internal/services"
	"supermock_backend/internal/services/dto"

	"supermock_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("", h.Create)
		apps.GET("", h.List)
		apps.GET("/:id", h.GetByID)
		apps.PATCH("/:id", h.Update)
		apps.GET("/:id/calendar", h.Calendar)
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.appService.Create(actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	if _, ok := h.GetActor(c); !ok {
		return
	}

	var query dto.ApplicationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	apps, err := h.appService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) GetByID(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	app, err := h.appService.GetByID(actor, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.appService.Update(actor, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// Calendar отдает событие собеседования: по умолчанию ссылку на
// Google Calendar, с ?format=ics - готовый .ics файл.
func (h *ApplicationHandler) Calendar(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	app, err := h.appService.GetByID(actor, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	event, err := interviewEvent(app)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if c.Query("format") == "ics" {
		c.Header("Content-Disposition", `attachment; filename="interview.ics"`)
		c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(calendar.ICSContent(event, time.Now())))
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": calendar.GoogleLink(event)})
}

// interviewEvent строит событие календаря из отклика. Время берется с
// самого отклика, при его отсутствии - с карточки.
func interviewEvent(app *models.Application) (calendar.Event, error) {
	var start time.Time
	switch {
	case app.ScheduledAt != nil:
		start = *app.ScheduledAt
	case app.Card != nil:
		start = app.Card.ScheduledAt
	default:
		return calendar.Event{}, apperrors.NewBadRequestError("Interview has no scheduled time")
	}

	title := "Mock interview"
	if app.Card != nil && app.Card.Profession != "" {
		title = fmt.Sprintf("Mock interview: %s", app.Card.Profession)
	}

	return calendar.Event{
		Title:     title,
		StartTime: start,
	}, nil
}
