package contact

import (
	"context"

	"github.com/glowandgather/storefront/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for contact messages and
// their audit logs. The write-plus-log operations are atomic: a message
// mutation and its audit entry either both land or neither does, so the
// trail can never miss a transition.
type MessageRepository interface {
	// CreateWithLog inserts a message together with its CREATED audit entry
	CreateWithLog(ctx context.Context, message *domain.ContactMessage, log *domain.ContactLog) error

	// GetByID retrieves a message by ID
	GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error)

	// All retrieves every message, newest first
	All(ctx context.Context) ([]*domain.ContactMessage, error)

	// Unread retrieves unread messages, newest first
	Unread(ctx context.Context) ([]*domain.ContactMessage, error)

	// MarkAsRead flips the read flag to true
	MarkAsRead(ctx context.Context, id int64) error

	// UpdateStatusWithLog persists a status change together with its
	// STATUS_CHANGED audit entry
	UpdateStatusWithLog(ctx context.Context, id int64, status string, log *domain.ContactLog) error

	// Delete removes a message
	Delete(ctx context.Context, id int64) error

	// Logs retrieves the full audit trail, newest first
	Logs(ctx context.Context) ([]*domain.ContactLog, error)

	// Count returns the total number of messages
	Count(ctx context.Context) (int64, error)

	// CountUnread returns the number of unread messages
	CountUnread(ctx context.Context) (int64, error)
}

// GormMessageRepository is the GORM implementation of MessageRepository
type GormMessageRepository struct {
	DB *gorm.DB
}

// NewGormMessageRepository creates a new GORM-based repository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{DB: db}
}

func (r *GormMessageRepository) CreateWithLog(ctx context.Context, message *domain.ContactMessage, log *domain.ContactLog) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		log.MessageID = message.ID
		return tx.Create(log).Error
	})
}

func (r *GormMessageRepository) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	var message domain.ContactMessage
	err := r.DB.WithContext(ctx).First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *GormMessageRepository) All(ctx context.Context) ([]*domain.ContactMessage, error) {
	var messages []*domain.ContactMessage
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *GormMessageRepository) Unread(ctx context.Context) ([]*domain.ContactMessage, error) {
	var messages []*domain.ContactMessage
	err := r.DB.WithContext(ctx).
		Where("is_read = ?", false).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *GormMessageRepository) MarkAsRead(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *GormMessageRepository) UpdateStatusWithLog(ctx context.Context, id int64, status string, log *domain.ContactLog) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.ContactMessage{}).
			Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return err
		}
		log.MessageID = id
		return tx.Create(log).Error
	})
}

func (r *GormMessageRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&domain.ContactMessage{}, id).Error
}

func (r *GormMessageRepository) Logs(ctx context.Context) ([]*domain.ContactLog, error) {
	var logs []*domain.ContactLog
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *GormMessageRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&domain.ContactMessage{}).Count(&total).Error
	return total, err
}

func (r *GormMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("is_read = ?", false).
		Count(&total).Error
	return total, err
}
