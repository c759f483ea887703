package contact

import (
	"context"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/glowandgather/storefront/pkg/common"
	"github.com/glowandgather/storefront/pkg/metrics"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TopicMessageCreated is published on the event bus with the stored
// message whenever the public contact form lands a new submission.
const TopicMessageCreated = "contact.message.created"

const defaultSubject = "No subject"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Service provides contact message operations on top of MessageRepository.
// Every state-changing operation on a message writes its paired audit
// record in the same repository transaction.
type Service struct {
	repo MessageRepository
	bus  EventBus.Bus
}

// NewService creates a new contact service. bus may be nil when no
// subscribers are wired (tests, one-off tools).
func NewService(repo MessageRepository, bus EventBus.Bus) *Service {
	return &Service{repo: repo, bus: bus}
}

// CreateInput is the payload accepted from the public contact form.
type CreateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ListAll returns every message, newest first.
func (s *Service) ListAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.repo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query messages")
	}
	return messages, nil
}

// ListUnread returns unread messages, newest first.
func (s *Service) ListUnread(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.repo.Unread(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query unread messages")
	}
	return messages, nil
}

// GetByID returns a single message or a NotFound error.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	message, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Message not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "query message")
	}
	return message, nil
}

// Create persists a new message together with its CREATED audit entry and
// notifies subscribers. Subject defaults when the form leaves it blank.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.Validation("Name, email, and message are required")
	}
	if !common.IsValidEmail(email) {
		return nil, apperrors.Validation("Invalid email format")
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = defaultSubject
	}

	message := &domain.ContactMessage{
		ID:      common.UUIDint64(),
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: input.Message,
		IsRead:  false,
		Status:  domain.ContactStatusPending,
	}
	log := s.newLog(domain.ContactLogCreated, map[string]interface{}{
		"subject": subject,
	})
	if err := s.repo.CreateWithLog(ctx, message, log); err != nil {
		return nil, errors.Wrap(err, "create message")
	}

	zap.L().Info("contact message created",
		zap.Int64("id", message.ID),
		zap.String("email", message.Email))
	metrics.IncrCounter("contact_message_created", 1)

	if s.bus != nil {
		s.bus.Publish(TopicMessageCreated, *message)
	}
	return message, nil
}

// MarkAsRead flips the read flag to true. Re-reading an already-read
// message is a no-op; there is no path back to unread.
func (s *Service) MarkAsRead(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		return nil, errors.Wrap(err, "mark message read")
	}
	return s.GetByID(ctx, id)
}

// UpdateStatus moves a message between PENDING and DELIVERED, appending a
// STATUS_CHANGED audit entry in the same transaction.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.ContactMessage, error) {
	if status != domain.ContactStatusPending && status != domain.ContactStatusDelivered {
		return nil, apperrors.Validation("Status must be PENDING or DELIVERED")
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	log := s.newLog(domain.ContactLogStatusChanged, map[string]interface{}{
		"status": status,
	})
	if err := s.repo.UpdateStatusWithLog(ctx, id, status, log); err != nil {
		return nil, errors.Wrap(err, "update message status")
	}

	zap.L().Info("contact message status updated",
		zap.Int64("id", id),
		zap.String("status", status))
	return s.GetByID(ctx, id)
}

// Delete removes a message. Its audit entries are retained.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete message")
	}
	zap.L().Info("contact message deleted", zap.Int64("id", id))
	return nil
}

// Logs returns the full audit trail, newest first.
func (s *Service) Logs(ctx context.Context) ([]*domain.ContactLog, error) {
	logs, err := s.repo.Logs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query contact logs")
	}
	return logs, nil
}

// Count returns the total number of messages.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// CountUnread returns the number of unread messages.
func (s *Service) CountUnread(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}

func (s *Service) newLog(action string, details map[string]interface{}) *domain.ContactLog {
	payload, err := json.MarshalToString(details)
	if err != nil {
		payload = "{}"
	}
	return &domain.ContactLog{
		ID:      common.UUIDint64(),
		Action:  action,
		Details: payload,
	}
}
