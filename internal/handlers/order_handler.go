package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiri-yossy/bezihuri/internal/middleware"
	"github.com/kiri-yossy/bezihuri/internal/services"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
)

type OrderHandler struct {
	*BaseHandler
	orderService *services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{BaseHandler: base, orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", h.Purchase)
	}
}

// Purchase is buy-now: the item goes straight to sold_out.
func (h *OrderHandler) Purchase(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orderService.Purchase(h.GetDB(c), req.ItemID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
