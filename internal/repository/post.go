package repository

import (
	"context"

	"sticobytes/internal/cache"
	"sticobytes/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for blog post data operations.
//
// Create and Update run the post write and the tag-association
// replacement inside a single transaction, so either the full intended
// tag set lands or none of it does.
type PostRepository interface {
	Create(ctx context.Context, post *models.BlogPost, tagNames []string) error
	Update(ctx context.Context, post *models.BlogPost, tagNames []string, replaceTags bool) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	IncrementViews(ctx context.Context, slug string) error
	ListPublished(ctx context.Context, categorySlug string, limit, offset int) ([]*models.BlogPost, int64, error)
	ListAll(ctx context.Context, limit, offset int) ([]*models.BlogPost, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

var errSlugTaken = models.NewConflictError(
	"A post with this title already exists. Please use a different title.")

func (r *postRepository) Create(ctx context.Context, post *models.BlogPost, tagNames []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Friendly pre-check; the uniqueIndex on slug remains the
		// authoritative guard under concurrent creates.
		var count int64
		if err := tx.Model(&models.BlogPost{}).Where("slug = ?", post.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errSlugTaken
		}

		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			if isUniqueViolation(err) {
				return errSlugTaken
			}
			return err
		}

		return r.replaceTags(tx, post, tagNames)
	})
	if err == nil {
		cache.InvalidateBlogLists(ctx)
	}
	return err
}

func (r *postRepository) Update(ctx context.Context, post *models.BlogPost, tagNames []string, replaceTags bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.BlogPost{}).
			Where("slug = ? AND id <> ?", post.Slug, post.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errSlugTaken
		}

		// The view counter is only ever written through IncrementViews.
		// Saving it from the loaded snapshot would roll back increments
		// that landed while the edit was in flight.
		if err := tx.Omit(clause.Associations, "views", "created_at").Save(post).Error; err != nil {
			if isUniqueViolation(err) {
				return errSlugTaken
			}
			return err
		}

		if replaceTags {
			return r.replaceTags(tx, post, tagNames)
		}
		return nil
	})
	if err == nil {
		cache.InvalidateBlogLists(ctx)
	}
	return err
}

// replaceTags resolves tagNames and fully replaces the post's
// associations with the result. A nil/empty name list clears them.
func (r *postRepository) replaceTags(tx *gorm.DB, post *models.BlogPost, tagNames []string) error {
	tags, err := ResolveTags(tx, tagNames)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		return tx.Model(post).Association("Tags").Clear()
	}
	if err := tx.Model(post).Association("Tags").Replace(&tags); err != nil {
		return err
	}
	post.Tags = tags
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.BlogPost
		if err := tx.First(&post, id).Error; err != nil {
			if isNotFound(err) {
				return models.NewNotFoundError("Blog post")
			}
			return err
		}

		// Hard delete; association rows must not outlive the post.
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err == nil {
		cache.InvalidateBlogLists(ctx)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, models.NewNotFoundError("Blog post")
		}
		return nil, err
	}
	return &post, nil
}

// GetPublishedBySlug returns a post by slug on the public path: drafts
// are invisible here and surface as Not-Found.
func (r *postRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("slug = ? AND status = ?", slug, models.PostStatusPublished).
		First(&post).Error
	if err != nil {
		if isNotFound(err) {
			return nil, models.NewNotFoundError("Blog post")
		}
		return nil, err
	}
	return &post, nil
}

// IncrementViews bumps the view counter in a single atomic UPDATE so
// concurrent reads never lose increments.
func (r *postRepository) IncrementViews(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("slug = ? AND status = ?", slug, models.PostStatusPublished).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// publishedQuery builds the shared filter for public listings. It is
// rebuilt per use so count and find never share a gorm statement.
func (r *postRepository) publishedQuery(ctx context.Context, categorySlug string) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("blog_posts.status = ?", models.PostStatusPublished)
	if categorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = blog_posts.category_id").
			Where("categories.slug = ?", categorySlug)
	}
	return q
}

func (r *postRepository) ListPublished(ctx context.Context, categorySlug string, limit, offset int) ([]*models.BlogPost, int64, error) {
	var total int64
	if err := r.publishedQuery(ctx, categorySlug).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.BlogPost
	err := r.publishedQuery(ctx, categorySlug).
		Preload("Category").
		Preload("Tags").
		Order("blog_posts.published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) ListAll(ctx context.Context, limit, offset int) ([]*models.BlogPost, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.BlogPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
