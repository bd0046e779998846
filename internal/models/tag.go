package models

// Tag is a many-to-many label for blog posts. Tags are created lazily:
// a requested name whose derived slug does not exist yet produces a new
// row, otherwise the existing row is reused.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;not null" json:"name"`
	Slug string `gorm:"size:120;not null;uniqueIndex" json:"slug"`
}

// TableName specifies the table name for GORM.
func (Tag) TableName() string {
	return "tags"
}
