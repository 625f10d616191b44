package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiri-yossy/bezihuri/internal/middleware"
	"github.com/kiri-yossy/bezihuri/internal/services"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService        *services.UserService
	itemService        *services.ItemService
	socialService      *services.SocialService
	reservationService *services.ReservationService
	orderService       *services.OrderService
}

func NewUserHandler(
	base *BaseHandler,
	userService *services.UserService,
	itemService *services.ItemService,
	socialService *services.SocialService,
	reservationService *services.ReservationService,
	orderService *services.OrderService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:        base,
		userService:        userService,
		itemService:        itemService,
		socialService:      socialService,
		reservationService: reservationService,
		orderService:       orderService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/users/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.GetMe)
		me.PUT("", h.UpdateMe)
		me.GET("/likes", h.MyLikedItems)
		me.GET("/orders", h.MyOrders)
	}

	public := r.Group("/users")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("/:userId", h.GetProfile)
		public.GET("/:userId/items", h.ListUserItems)
	}

	social := r.Group("/users")
	social.Use(middleware.AuthMiddleware())
	{
		social.POST("/:userId/follow", h.Follow)
		social.DELETE("/:userId/follow", h.Unfollow)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetMe(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) MyLikedItems(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListLikedBy(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *UserHandler) MyOrders(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListForBuyer(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userService.GetPublicProfile(h.GetDB(c), c.Param("userId"), h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) ListUserItems(c *gin.Context) {
	items, err := h.itemService.ListBySeller(h.GetDB(c), c.Param("userId"), h.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *UserHandler) Follow(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.socialService.Follow(h.GetDB(c), userID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.socialService.Unfollow(h.GetDB(c), userID, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
