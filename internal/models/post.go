// Package models contains data structures for the application's domain models.
package models

import "time"

// PostStatus defines the publication state of a blog post.
type PostStatus string

const (
	// PostStatusDraft indicates a post is only visible through the admin API.
	PostStatusDraft PostStatus = "draft"
	// PostStatusPublished indicates a post is visible on the public site.
	PostStatusPublished PostStatus = "published"
)

// Valid reports whether s is a known publication state.
func (s PostStatus) Valid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

// BlogPost represents a content unit on the marketing site.
//
// Slug is unique across all posts; the database uniqueIndex is the
// authoritative guard, pre-checks in the repository only produce a
// friendlier error. PublishedAt is stamped exactly once, on the
// transition into the published status, and is never cleared by
// later edits.
type BlogPost struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Slug            string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	Excerpt         string     `gorm:"type:text" json:"excerpt"`
	FeaturedImage   string     `json:"featured_image"`
	Status          PostStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Views           int64      `gorm:"not null;default:0" json:"views"`
	ReadingTime     int        `gorm:"not null;default:1" json:"reading_time"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	CategoryID      *uint      `gorm:"index" json:"category_id,omitempty"`
	Category        *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags            []Tag      `gorm:"many2many:post_tags" json:"tags"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PublishedAt     *time.Time `json:"published_at"`
}

// TableName specifies the table name for GORM.
func (BlogPost) TableName() string {
	return "blog_posts"
}
