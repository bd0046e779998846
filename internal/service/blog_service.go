// Package service contains the business logic between the HTTP layer
// and the repositories.
package service

import (
	"context"
	"strings"
	"time"

	"sticobytes/internal/cache"
	"sticobytes/internal/middleware"
	"sticobytes/internal/models"
	"sticobytes/internal/pagination"
	"sticobytes/internal/repository"
	"sticobytes/internal/textutil"
)

// BlogService owns the blog content lifecycle: slug generation, derived
// fields (reading time, excerpt, meta), publication transitions, and
// public visibility rules.
type BlogService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

const maxTitleLen = 255

// CreatePostInput carries the fields for creating a blog post.
type CreatePostInput struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt"`
	FeaturedImage   string   `json:"featured_image"`
	Status          string   `json:"status"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	CategoryID      *uint    `json:"category_id"`
	Tags            []string `json:"tags"`
}

// UpdatePostInput carries partial updates for a blog post. Empty scalar
// fields keep the current value; a nil Tags pointer leaves the tag set
// untouched while an empty non-nil slice clears it.
type UpdatePostInput struct {
	PostID          uint
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Excerpt         string    `json:"excerpt"`
	FeaturedImage   string    `json:"featured_image"`
	Status          string    `json:"status"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	CategoryID      *uint     `json:"category_id"`
	Tags            *[]string `json:"tags"`
}

// ListPublishedInput selects a page of the public blog listing.
type ListPublishedInput struct {
	CategorySlug string
	Page         int
	Limit        int
}

// PostPage is one page of a post listing with its pagination metadata.
type PostPage struct {
	Posts []*models.BlogPost `json:"posts"`
	Meta  pagination.Meta    `json:"meta"`
}

// NewBlogService creates a new blog service.
func NewBlogService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) *BlogService {
	return &BlogService{postRepo: postRepo, categoryRepo: categoryRepo}
}

func (s *BlogService) CreatePost(ctx context.Context, in CreatePostInput) (*models.BlogPost, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 255 characters)")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	status := models.PostStatus(in.Status)
	if in.Status == "" {
		status = models.PostStatusDraft
	}
	if !status.Valid() {
		return nil, models.NewValidationError("Status must be draft or published")
	}

	slug := textutil.Slugify(title)
	if slug == "" {
		return nil, models.NewValidationError("Title must contain at least one letter or digit")
	}

	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" {
		excerpt = textutil.Excerpt(in.Content)
	}
	metaTitle := strings.TrimSpace(in.MetaTitle)
	if metaTitle == "" {
		metaTitle = title
	}
	metaDescription := strings.TrimSpace(in.MetaDescription)
	if metaDescription == "" {
		metaDescription = excerpt
	}

	post := &models.BlogPost{
		Title:           title,
		Slug:            slug,
		Content:         in.Content,
		Excerpt:         excerpt,
		FeaturedImage:   in.FeaturedImage,
		Status:          status,
		ReadingTime:     textutil.ReadingTime(in.Content),
		MetaTitle:       metaTitle,
		MetaDescription: metaDescription,
		CategoryID:      in.CategoryID,
	}
	if status == models.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(ctx, post, in.Tags); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *BlogService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.BlogPost, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(in.Title); title != "" && title != post.Title {
		if len(title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 255 characters)")
		}
		slug := textutil.Slugify(title)
		if slug == "" {
			return nil, models.NewValidationError("Title must contain at least one letter or digit")
		}
		post.Title = title
		post.Slug = slug
	}
	if in.Content != "" {
		if strings.TrimSpace(in.Content) == "" {
			return nil, models.NewValidationError("Content is required")
		}
		post.Content = in.Content
		post.ReadingTime = textutil.ReadingTime(in.Content)
	}
	if in.Excerpt != "" {
		post.Excerpt = in.Excerpt
	}
	if in.FeaturedImage != "" {
		post.FeaturedImage = in.FeaturedImage
	}
	if in.MetaTitle != "" {
		post.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != "" {
		post.MetaDescription = in.MetaDescription
	}
	if in.CategoryID != nil {
		post.CategoryID = in.CategoryID
	}

	if in.Status != "" {
		status := models.PostStatus(in.Status)
		if !status.Valid() {
			return nil, models.NewValidationError("Status must be draft or published")
		}
		// PublishedAt is stamped on the first transition to published
		// and kept through every later edit, including unpublish.
		if status == models.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Status = status
	}

	var tags []string
	if in.Tags != nil {
		tags = *in.Tags
	}
	if err := s.postRepo.Update(ctx, post, tags, in.Tags != nil); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *BlogService) DeletePost(ctx context.Context, id uint) error {
	return s.postRepo.Delete(ctx, id)
}

func (s *BlogService) GetPost(ctx context.Context, id uint) (*models.BlogPost, error) {
	return s.postRepo.GetByID(ctx, id)
}

// GetPublishedPost returns a published post by slug and records the
// view. The increment is atomic at the storage layer; a failure to
// count a view never fails the read.
func (s *BlogService) GetPublishedPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.postRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.postRepo.IncrementViews(ctx, slug); err != nil {
		middleware.Logger.WarnContext(ctx, "view increment failed", "slug", slug, "error", err)
	} else {
		post.Views++
	}
	return post, nil
}

// ListPublished returns a page of published posts, newest publication
// first. The first unfiltered page is served through the cache.
func (s *BlogService) ListPublished(ctx context.Context, in ListPublishedInput) (*PostPage, error) {
	params := pagination.New(in.Page, in.Limit, pagination.DefaultPublicLimit)

	if in.CategorySlug == "" && params.Page == 1 && params.Limit == pagination.DefaultPublicLimit {
		var page PostPage
		err := cache.Aside(ctx, cache.FrontPageKey(), &page, cache.ListTTL, func() error {
			fetched, fetchErr := s.fetchPublished(ctx, in.CategorySlug, params)
			if fetchErr != nil {
				return fetchErr
			}
			page = *fetched
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &page, nil
	}

	return s.fetchPublished(ctx, in.CategorySlug, params)
}

func (s *BlogService) fetchPublished(ctx context.Context, categorySlug string, params pagination.Params) (*PostPage, error) {
	posts, total, err := s.postRepo.ListPublished(ctx, categorySlug, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return &PostPage{
		Posts: posts,
		Meta:  pagination.NewMeta(total, params.Page, params.Limit),
	}, nil
}

// sitemapMaxURLs is the per-file URL cap of the sitemap protocol.
const sitemapMaxURLs = 50000

// SitemapEntries returns every published post for sitemap generation,
// newest publication first, bypassing the page-size clamp of the
// public listing.
func (s *BlogService) SitemapEntries(ctx context.Context) ([]*models.BlogPost, error) {
	posts, _, err := s.postRepo.ListPublished(ctx, "", sitemapMaxURLs, 0)
	return posts, err
}

// ListAll returns every post regardless of status, newest first. Admin only.
func (s *BlogService) ListAll(ctx context.Context, page, limit int) (*PostPage, error) {
	params := pagination.New(page, limit, pagination.DefaultPublicLimit)
	posts, total, err := s.postRepo.ListAll(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return &PostPage{
		Posts: posts,
		Meta:  pagination.NewMeta(total, params.Page, params.Limit),
	}, nil
}

// Category returns a single category by slug.
func (s *BlogService) Category(ctx context.Context, slug string) (*models.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slug)
}

// Categories returns the category listing through the cache.
func (s *BlogService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := cache.Aside(ctx, cache.CategoriesKey(), &categories, cache.CategoriesTTL, func() error {
		var fetchErr error
		categories, fetchErr = s.categoryRepo.List(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}
