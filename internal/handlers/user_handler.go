package handlers

import (
	"net/http"

	"supermock_backend/internal/middleware"
	"supermock_backend/internal/services"
	"supermock_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/profile", h.GetProfile)
		user.PATCH("/profile", h.UpdateProfile)
		user.GET("/limits", h.GetLimits)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	page := ParseQueryInt(c, "page", 1)
	pageSize := ParseQueryInt(c, "page_size", 20)

	users, err := h.userService.ListUsers(actor, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) GetLimits(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	limits, err := h.userService.GetLimits(actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, limits)
}
