package dto

// --- Request DTOs ---

// CreateMessageRequest represents a contact-form submission from a visitor.
type CreateMessageRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message" binding:"required"`
}

// --- Response DTOs ---

// MessageResponse represents the data returned for a contact message.
type MessageResponse struct {
	ID        int64   `json:"id" example:"42"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Subject   *string `json:"subject,omitempty"`
	Message   string  `json:"message"`
	Read      bool    `json:"read"`
	CreatedAt string  `json:"createdAt" example:"2026-01-15T10:00:00Z"`
}

// MessageListResponse represents the response for the message inbox.
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Unread   int               `json:"unread"`
}

// UnreadCountResponse carries the inbox unread counter.
type UnreadCountResponse struct {
	Unread int `json:"unread" example:"3"`
}
