package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiri-yossy/bezihuri/internal/handlers"
	"github.com/kiri-yossy/bezihuri/ws"
)

// RegisterRoutes wires all HTTP and WebSocket routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, wsHandler *ws.Handler) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ItemHandler.RegisterRoutes(api)
		appHandlers.ReservationHandler.RegisterRoutes(api)
		appHandlers.OrderHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.ChatHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
	}

	ginRouter.GET("/ws", wsHandler.ServeWS)
}
