package services

import (
	"context"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
	"github.com/oalia/scholarsite/internal/pkg/validation"
	"github.com/oalia/scholarsite/internal/querycache"
)

// MessageService handles contact-form messages and the admin inbox.
type MessageService struct {
	messageRepo *repositories.MessageRepository
	cache       *querycache.Cache
}

// NewMessageService creates a new message service instance
func NewMessageService(messageRepo *repositories.MessageRepository, cache *querycache.Cache) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		cache:       cache,
	}
}

// List returns all messages, newest first.
func (s *MessageService) List(ctx context.Context) ([]*models.Message, error) {
	res := s.cache.Query(ctx, querycache.MessagesKey(), func(ctx context.Context) (interface{}, error) {
		return s.messageRepo.GetAll(ctx)
	})
	if res.Data == nil {
		return nil, res.Err
	}
	return res.Data.([]*models.Message), res.Err
}

// View returns a single message and marks it read the first time an admin
// opens it. A second view is a plain read.
func (s *MessageService) View(ctx context.Context, id int64) (*models.Message, error) {
	message, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !message.Read {
		err = s.cache.Mutate(ctx, func(ctx context.Context) error {
			return s.messageRepo.MarkRead(ctx, id)
		}, querycache.ByEntity(querycache.EntityMessages))
		if err != nil {
			return nil, err
		}
		message.Read = true
	}
	return message, nil
}

// Create records a visitor's contact-form submission.
func (s *MessageService) Create(ctx context.Context, m *models.Message) (int64, error) {
	if !validation.IsValidName(m.Name) {
		return 0, apperrors.NewValidationError("name", "name must be between 2 and 100 characters")
	}
	if !validation.IsValidEmail(m.Email) {
		return 0, apperrors.NewValidationError("email", "invalid email address")
	}
	if m.Message == "" {
		return 0, apperrors.NewValidationError("message", "message is required")
	}

	var id int64
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.messageRepo.Create(ctx, m)
		return err
	}, querycache.ByEntity(querycache.EntityMessages))
	return id, err
}

// Delete removes a message from the inbox.
func (s *MessageService) Delete(ctx context.Context, id int64) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.messageRepo.Delete(ctx, id)
	}, querycache.ByEntity(querycache.EntityMessages))
}

// UnreadCount counts unread messages in the cached inbox.
func (s *MessageService) UnreadCount(ctx context.Context) (int, error) {
	messages, err := s.List(ctx)
	if messages == nil {
		return 0, err
	}
	count := 0
	for _, m := range messages {
		if !m.Read {
			count++
		}
	}
	return count, err
}
