package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiri-yossy/bezihuri/internal/middleware"
	"github.com/kiri-yossy/bezihuri/internal/services"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
)

type ItemHandler struct {
	*BaseHandler
	itemService   *services.ItemService
	socialService *services.SocialService
}

func NewItemHandler(base *BaseHandler, itemService *services.ItemService, socialService *services.SocialService) *ItemHandler {
	return &ItemHandler{BaseHandler: base, itemService: itemService, socialService: socialService}
}

func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public browsing; optional auth personalizes the like flags.
	public := r.Group("/items")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.List)
		public.GET("/search", h.Search)
		public.GET("/:itemId", h.Get)
		public.GET("/:itemId/comments", h.ListComments)
	}

	protected := r.Group("/items")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.Create)
		protected.PUT("/:itemId", h.Update)
		protected.DELETE("/:itemId", h.Delete)
		protected.POST("/:itemId/likes", h.Like)
		protected.DELETE("/:itemId/likes", h.Unlike)
		protected.POST("/:itemId/comments", h.Comment)
	}
}

func (h *ItemHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	var (
		list *dto.ItemListResponse
		err  error
	)
	if category := c.Query("category"); category != "" {
		list, err = h.itemService.ListByCategory(h.GetDB(c), category, page, pageSize, h.CurrentUserID(c))
	} else {
		list, err = h.itemService.List(h.GetDB(c), page, pageSize, h.CurrentUserID(c))
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ItemHandler) Search(c *gin.Context) {
	items, err := h.itemService.Search(h.GetDB(c), c.Query("q"), h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ItemHandler) Get(c *gin.Context) {
	item, err := h.itemService.GetByID(h.GetDB(c), c.Param("itemId"), h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.itemService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.itemService.Update(h.GetDB(c), c.Param("itemId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(h.GetDB(c), c.Param("itemId"), userID, h.IsAdmin(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) Like(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.socialService.LikeItem(h.GetDB(c), userID, c.Param("itemId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) Unlike(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.socialService.UnlikeItem(h.GetDB(c), userID, c.Param("itemId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) Comment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.socialService.CommentOnItem(h.GetDB(c), userID, c.Param("itemId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *ItemHandler) ListComments(c *gin.Context) {
	comments, err := h.socialService.ListComments(h.GetDB(c), c.Param("itemId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
