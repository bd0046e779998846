package repository

import (
	"context"
	"testing"

	"sticobytes/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterRepository_SubscribeLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNewsletterRepository(db)
	ctx := context.Background()

	sub, err := repo.Subscribe(ctx, "  Reader@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email, "email is normalized")
	assert.True(t, sub.IsActive)

	// Subscribing again while active is a conflict.
	_, err = repo.Subscribe(ctx, "reader@example.com")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)

	require.NoError(t, repo.Unsubscribe(ctx, "reader@example.com"))

	var row models.NewsletterSubscriber
	require.NoError(t, db.Where("email = ?", "reader@example.com").First(&row).Error)
	assert.False(t, row.IsActive)
	assert.NotNil(t, row.UnsubscribedAt)

	// Re-subscribing reactivates the same row.
	reactivated, err := repo.Subscribe(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, row.ID, reactivated.ID)
	assert.True(t, reactivated.IsActive)
	assert.Nil(t, reactivated.UnsubscribedAt)
}

func TestNewsletterRepository_UnsubscribeUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNewsletterRepository(db)

	err := repo.Unsubscribe(context.Background(), "ghost@example.com")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestNewsletterRepository_ListActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNewsletterRepository(db)
	ctx := context.Background()

	_, err := repo.Subscribe(ctx, "one@example.com")
	require.NoError(t, err)
	_, err = repo.Subscribe(ctx, "two@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Unsubscribe(ctx, "one@example.com"))

	subs, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "two@example.com", subs[0].Email)
}
