package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/models/dto"
	"github.com/oalia/scholarsite/internal/app/services"
	"github.com/oalia/scholarsite/internal/middleware"
)

// MessageController handles contact-form messages and the admin inbox
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

func toMessageResponse(m *models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// SubmitMessage handles a visitor's contact-form submission
// @Summary Submit a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body dto.CreateMessageRequest true "Message data"
// @Success 201 {object} dto.APIResponse "Message submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /messages [post]
func (c *MessageController) SubmitMessage(ctx *gin.Context) {
	var req dto.CreateMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid message data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	message := &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if _, err := c.messageService.Create(ctx, message); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(nil, "Message submitted"))
}

// ListMessages retrieves the admin inbox
// @Summary List messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MessageListResponse} "Messages retrieved successfully"
// @Router /admin/messages [get]
func (c *MessageController) ListMessages(ctx *gin.Context) {
	messages, err := c.messageService.List(ctx)
	if messages == nil && err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := dto.MessageListResponse{Messages: make([]dto.MessageResponse, 0, len(messages))}
	for _, m := range messages {
		if !m.Read {
			list.Unread++
		}
		list.Messages = append(list.Messages, toMessageResponse(m))
	}
	ctx.JSON(http.StatusOK, dto.NewCachedResponse(list, err))
}

// UnreadCount returns the number of unread inbox messages
// @Summary Unread message count
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UnreadCountResponse} "Unread count retrieved successfully"
// @Router /admin/messages/unread-count [get]
func (c *MessageController) UnreadCount(ctx *gin.Context) {
	count, err := c.messageService.UnreadCount(ctx)
	if err != nil && count == 0 {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewCachedResponse(dto.UnreadCountResponse{Unread: count}, err))
}

// ViewMessage retrieves one message and marks it read on first view
// @Summary View a message
// @Description Returns the message; an unread message is marked read as a side effect
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Message retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /admin/messages/{id} [get]
func (c *MessageController) ViewMessage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	message, err := c.messageService.View(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: toMessageResponse(message), Timestamp: time.Now()})
}

// DeleteMessage handles message deletion
// @Summary Delete a message
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Param confirm query bool true "Must be true to confirm the delete"
// @Success 200 {object} dto.APIResponse "Message deleted"
// @Failure 428 {object} dto.ErrorResponse "Delete not confirmed"
// @Router /admin/messages/{id} [delete]
func (c *MessageController) DeleteMessage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	confirmedDelete(ctx, func() error {
		return c.messageService.Delete(ctx, id)
	})
}
