package repository

import (
	"context"
	"testing"
	"time"

	"sticobytes/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublishedPost(title, slug string) *models.BlogPost {
	now := time.Now()
	return &models.BlogPost{
		Title:       title,
		Slug:        slug,
		Content:     "Some content for " + title,
		Status:      models.PostStatusPublished,
		ReadingTime: 1,
		PublishedAt: &now,
	}
}

func TestPostRepository_Create_SlugConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPublishedPost("First", "my-post"), nil))

	err := repo.Create(ctx, newPublishedPost("Second", "my-post"), nil)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestPostRepository_Update_SlugConflictExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	first := newPublishedPost("First", "first")
	second := newPublishedPost("Second", "second")
	require.NoError(t, repo.Create(ctx, first, nil))
	require.NoError(t, repo.Create(ctx, second, nil))

	// Saving a post under its own slug is not a conflict.
	first.Content = "edited"
	require.NoError(t, repo.Update(ctx, first, nil, false))

	// Taking another post's slug is.
	second.Slug = "first"
	err := repo.Update(ctx, second, nil, false)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestPostRepository_GetPublishedBySlug_DraftInvisible(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	draft := &models.BlogPost{
		Title:       "Draft",
		Slug:        "draft-post",
		Content:     "hidden",
		Status:      models.PostStatusDraft,
		ReadingTime: 1,
	}
	require.NoError(t, repo.Create(ctx, draft, nil))

	_, err := repo.GetPublishedBySlug(ctx, "draft-post")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	// Same lookup succeeds once published.
	draft.Status = models.PostStatusPublished
	now := time.Now()
	draft.PublishedAt = &now
	require.NoError(t, repo.Update(ctx, draft, nil, false))

	found, err := repo.GetPublishedBySlug(ctx, "draft-post")
	require.NoError(t, err)
	assert.Equal(t, "Draft", found.Title)
}

func TestPostRepository_IncrementViews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := newPublishedPost("Counted", "counted")
	require.NoError(t, repo.Create(ctx, post, nil))

	require.NoError(t, repo.IncrementViews(ctx, "counted"))
	require.NoError(t, repo.IncrementViews(ctx, "counted"))

	found, err := repo.GetPublishedBySlug(ctx, "counted")
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.Views)
}

func TestPostRepository_Update_KeepsConcurrentViews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := newPublishedPost("Edited While Read", "edited-while-read")
	require.NoError(t, repo.Create(ctx, post, nil))

	// An admin loads the post for editing, a reader views it, and the
	// edit is saved afterwards. The stale snapshot must not roll the
	// counter back.
	snapshot, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), snapshot.Views)

	require.NoError(t, repo.IncrementViews(ctx, "edited-while-read"))

	snapshot.Content = "revised"
	require.NoError(t, repo.Update(ctx, snapshot, nil, false))

	found, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "revised", found.Content)
	assert.Equal(t, int64(1), found.Views)
}

func TestPostRepository_IncrementViews_SkipsDrafts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	draft := &models.BlogPost{
		Title:       "Draft",
		Slug:        "draft",
		Content:     "hidden",
		Status:      models.PostStatusDraft,
		ReadingTime: 1,
	}
	require.NoError(t, repo.Create(ctx, draft, nil))
	require.NoError(t, repo.IncrementViews(ctx, "draft"))

	found, err := repo.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), found.Views)
}

func TestPostRepository_TagReplacement(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := newPublishedPost("Tagged", "tagged")
	require.NoError(t, repo.Create(ctx, post, []string{"Go", "Testing", "go"}))

	found, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, found.Tags, 2, "duplicate names collapse to one tag")

	// Full replacement: the new set wins, not a union.
	require.NoError(t, repo.Update(ctx, found, []string{"Testing", "Fiber"}, true))
	found, err = repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(found.Tags))
	for _, tag := range found.Tags {
		names = append(names, tag.Name)
	}
	assert.ElementsMatch(t, []string{"Testing", "Fiber"}, names)

	// An empty set clears all associations.
	require.NoError(t, repo.Update(ctx, found, nil, true))
	found, err = repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Tags)
}

func TestPostRepository_TagsReusedAcrossPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPublishedPost("One", "one"), []string{"Go"}))
	require.NoError(t, repo.Create(ctx, newPublishedPost("Two", "two"), []string{"Go"}))

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Where("slug = ?", "go").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPostRepository_Delete_RemovesAssociations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := newPublishedPost("Doomed", "doomed")
	require.NoError(t, repo.Create(ctx, post, []string{"Go", "Testing"}))

	require.NoError(t, repo.Delete(ctx, post.ID))

	var postCount int64
	require.NoError(t, db.Model(&models.BlogPost{}).Count(&postCount).Error)
	assert.Equal(t, int64(0), postCount)

	var assocCount int64
	require.NoError(t, db.Table("post_tags").Count(&assocCount).Error)
	assert.Equal(t, int64(0), assocCount)

	// Tags themselves survive for reuse by other posts.
	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(2), tagCount)
}

func TestPostRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	err := repo.Delete(context.Background(), 42)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_ListPublished_CategoryFilterAndPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	golang := models.Category{Name: "Go", Slug: "go"}
	design := models.Category{Name: "Design", Slug: "design"}
	require.NoError(t, db.Create(&golang).Error)
	require.NoError(t, db.Create(&design).Error)

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 5; i++ {
		publishedAt := base.Add(time.Duration(i) * time.Hour)
		post := &models.BlogPost{
			Title:       "Go post",
			Slug:        "go-post-" + string(rune('a'+i)),
			Content:     "content",
			Status:      models.PostStatusPublished,
			ReadingTime: 1,
			CategoryID:  &golang.ID,
			PublishedAt: &publishedAt,
		}
		require.NoError(t, repo.Create(ctx, post, nil))
	}
	other := newPublishedPost("Design post", "design-post")
	other.CategoryID = &design.ID
	require.NoError(t, repo.Create(ctx, other, nil))

	// Page through the filtered listing: 2 + 2 + 1 covers all five.
	firstPage, total, err := repo.ListPublished(ctx, "go", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, firstPage, 2)

	secondPage, _, err := repo.ListPublished(ctx, "go", 2, 2)
	require.NoError(t, err)
	require.Len(t, secondPage, 2)

	thirdPage, _, err := repo.ListPublished(ctx, "go", 2, 4)
	require.NoError(t, err)
	require.Len(t, thirdPage, 1)

	seen := map[uint]bool{}
	for _, p := range append(append(firstPage, secondPage...), thirdPage...) {
		assert.False(t, seen[p.ID], "no post appears on two pages")
		seen[p.ID] = true
		assert.Equal(t, "go", p.Category.Slug)
	}
	assert.Len(t, seen, 5)

	// Newest publication first.
	assert.True(t, firstPage[0].PublishedAt.After(*firstPage[1].PublishedAt))
}

func TestPostRepository_ListAll_IncludesDrafts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPublishedPost("Published", "published"), nil))
	draft := &models.BlogPost{
		Title:       "Draft",
		Slug:        "draft",
		Content:     "hidden",
		Status:      models.PostStatusDraft,
		ReadingTime: 1,
	}
	require.NoError(t, repo.Create(ctx, draft, nil))

	all, total, err := repo.ListAll(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	published, total, err := repo.ListPublished(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, published, 1)
}
