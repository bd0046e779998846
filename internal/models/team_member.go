package models

import "time"

// TeamMember represents a person shown on the team page, ordered by
// DisplayOrder ascending.
type TeamMember struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Position     string    `gorm:"size:120" json:"position"`
	Bio          string    `gorm:"type:text" json:"bio"`
	PhotoURL     string    `json:"photo_url"`
	LinkedinURL  string    `json:"linkedin_url"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}
