package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/middleware"
	"github.com/kiri-yossy/bezihuri/internal/services"
)

type ReservationHandler struct {
	*BaseHandler
	reservationService *services.ReservationService
}

func NewReservationHandler(base *BaseHandler, reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{BaseHandler: base, reservationService: reservationService}
}

func (h *ReservationHandler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/items")
	items.Use(middleware.AuthMiddleware())
	{
		items.POST("/:itemId/reservations", h.Request)
	}

	reservations := r.Group("/reservations")
	reservations.Use(middleware.AuthMiddleware())
	{
		reservations.GET("/requests", h.ListRequests)
		reservations.GET("/my", h.ListMy)
		reservations.POST("/:reservationId/approve", h.Approve)
		reservations.POST("/:reservationId/reject", h.Reject)
		reservations.POST("/:reservationId/complete", h.Complete)
	}
}

func (h *ReservationHandler) Request(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.reservationService.Request(h.GetDB(c), c.Param("itemId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListRequests is the seller's approval inbox.
func (h *ReservationHandler) ListRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	requests, err := h.reservationService.ListPendingForSeller(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": requests})
}

func (h *ReservationHandler) ListMy(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListForBuyer(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

func (h *ReservationHandler) Approve(c *gin.Context) {
	h.transition(c, h.reservationService.Approve)
}

func (h *ReservationHandler) Reject(c *gin.Context) {
	h.transition(c, h.reservationService.Reject)
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	h.transition(c, h.reservationService.Complete)
}

func (h *ReservationHandler) transition(c *gin.Context, apply func(db *gorm.DB, reservationID, actorID string) error) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := apply(h.GetDB(c), c.Param("reservationId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}
