package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiri-yossy/bezihuri/internal/middleware"
	"github.com/kiri-yossy/bezihuri/internal/services"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/ws"
)

type ChatHandler struct {
	*BaseHandler
	chatService *services.ChatService
	hub         *ws.Hub
}

func NewChatHandler(base *BaseHandler, chatService *services.ChatService, hub *ws.Hub) *ChatHandler {
	return &ChatHandler{BaseHandler: base, chatService: chatService, hub: hub}
}

func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	conversations := r.Group("/conversations")
	conversations.Use(middleware.AuthMiddleware())
	{
		conversations.GET("", h.List)
		conversations.GET("/:conversationId", h.Get)
		conversations.GET("/:conversationId/messages", h.ListMessages)
		conversations.POST("/:conversationId/messages", h.PostMessage)
	}
}

func (h *ChatHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	conversations, err := h.chatService.ListConversations(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

func (h *ChatHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	conversation, err := h.chatService.GetConversation(h.GetDB(c), c.Param("conversationId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversation)
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	messages, err := h.chatService.ListMessages(h.GetDB(c), c.Param("conversationId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PostMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	conversationID := c.Param("conversationId")
	message, err := h.chatService.PostMessage(h.GetDB(c), conversationID, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Relay to connected participants; the sender already has the message
	// from the response body.
	if h.hub != nil {
		if participantIDs, err := h.chatService.ParticipantIDs(h.GetDB(c), conversationID); err == nil {
			h.hub.BroadcastToUsers(participantIDs, userID, message)
		}
	}

	c.JSON(http.StatusCreated, message)
}
