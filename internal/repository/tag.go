package repository

import (
	"context"
	"strings"

	"sticobytes/internal/models"
	"sticobytes/internal/textutil"

	"gorm.io/gorm"
)

// TagRepository defines the interface for tag data operations. Tags
// are created as a side effect of post writes, so only reads are
// exposed here.
type TagRepository interface {
	List(ctx context.Context) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	return tags, err
}

// resolveTag looks up a tag by the slug derived from name, creating it
// when absent. A lost creation race falls back to the winner's row.
// Names whose derived slug is empty resolve to nil.
func resolveTag(db *gorm.DB, name string) (*models.Tag, error) {
	slug := textutil.Slugify(name)
	if slug == "" {
		return nil, nil
	}

	var tag models.Tag
	err := db.Where("slug = ?", slug).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	tag = models.Tag{Name: strings.TrimSpace(name), Slug: slug}
	if createErr := db.Create(&tag).Error; createErr != nil {
		if isUniqueViolation(createErr) {
			if fetchErr := db.Where("slug = ?", slug).First(&tag).Error; fetchErr == nil {
				return &tag, nil
			}
		}
		return nil, createErr
	}
	return &tag, nil
}

// ResolveTags maps free-text tag names to Tag rows, deduplicating by
// derived slug and skipping names that slugify to nothing. Order of
// first occurrence is preserved.
func ResolveTags(db *gorm.DB, names []string) ([]models.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	tags := make([]models.Tag, 0, len(names))

	for _, name := range names {
		slug := textutil.Slugify(name)
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}

		tag, err := resolveTag(db, name)
		if err != nil {
			return nil, err
		}
		if tag != nil {
			tags = append(tags, *tag)
		}
	}

	return tags, nil
}
