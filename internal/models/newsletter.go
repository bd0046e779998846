package models

import "time"

// NewsletterSubscriber records one email address on the newsletter list.
// Unsubscribing deactivates the row instead of deleting it so a
// re-subscribe can restore it.
type NewsletterSubscriber struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Email          string     `gorm:"size:254;not null;uniqueIndex" json:"email"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	SubscribedAt   time.Time  `gorm:"autoCreateTime" json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

// TableName specifies the table name for GORM.
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
