package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiri-yossy/bezihuri/internal/middleware"
	"github.com/kiri-yossy/bezihuri/internal/services"
)

type AdminHandler struct {
	*BaseHandler
	adminService *services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, adminService: adminService}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
		admin.DELETE("/users/:userId", h.DeleteUser)
		admin.GET("/items", h.ListItems)
		admin.DELETE("/items/:itemId", h.DeleteItem)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	users, err := h.adminService.ListUsers(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListItems(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	items, err := h.adminService.ListItems(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminService.DeleteUser(h.GetDB(c), c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DeleteItem(c *gin.Context) {
	if err := h.adminService.DeleteItem(h.GetDB(c), c.Param("itemId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
