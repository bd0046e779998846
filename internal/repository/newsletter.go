package repository

import (
	"context"
	"strings"
	"time"

	"sticobytes/internal/models"

	"gorm.io/gorm"
)

// NewsletterRepository defines the interface for newsletter subscriptions.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	ListActive(ctx context.Context) ([]models.NewsletterSubscriber, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new newsletter repository.
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

// Subscribe registers an email address. A previously unsubscribed
// address is reactivated in place; an already active one is a conflict.
func (r *newsletterRepository) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	email = normalizeEmail(email)

	var sub models.NewsletterSubscriber
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.Where("email = ?", email).First(&sub).Error
		switch {
		case findErr == nil:
			if sub.IsActive {
				return models.NewConflictError("This email is already subscribed")
			}
			sub.IsActive = true
			sub.UnsubscribedAt = nil
			return tx.Save(&sub).Error
		case isNotFound(findErr):
			sub = models.NewsletterSubscriber{Email: email, IsActive: true}
			if createErr := tx.Create(&sub).Error; createErr != nil {
				if isUniqueViolation(createErr) {
					return models.NewConflictError("This email is already subscribed")
				}
				return createErr
			}
			return nil
		default:
			return findErr
		}
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *newsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.NewsletterSubscriber{}).
		Where("email = ? AND is_active = ?", email, true).
		Updates(map[string]any{
			"is_active":       false,
			"unsubscribed_at": &now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Subscription")
	}
	return nil
}

func (r *newsletterRepository) ListActive(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	var subs []models.NewsletterSubscriber
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("subscribed_at DESC").
		Find(&subs).Error
	return subs, err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
