// Package seed provides helpers to create demo data for the
// application database. Intended for development and testing only.
package seed

import (
	"fmt"

	"sticobytes/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with demo content.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded content. Order matters: association rows
// and posts go before the rows they reference.
func (s *Seeder) ClearAll() error {
	statements := []string{
		"DELETE FROM post_tags",
		"DELETE FROM blog_posts",
		"DELETE FROM tags",
		"DELETE FROM categories",
		"DELETE FROM services",
		"DELETE FROM team_members",
		"DELETE FROM gadgets",
		"DELETE FROM newsletter_subscribers",
		"DELETE FROM users",
	}
	for _, stmt := range statements {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("cleanup failed at %q: %w", stmt, err)
		}
	}
	return nil
}

// SeedAll populates every table with demo content and returns the
// admin account created for dashboard access.
func (s *Seeder) SeedAll(numPosts int) (*models.User, error) {
	admin, err := s.factory.CreateAdmin()
	if err != nil {
		return nil, fmt.Errorf("admin seeding failed: %w", err)
	}

	categories, err := s.factory.CreateCategories()
	if err != nil {
		return nil, fmt.Errorf("category seeding failed: %w", err)
	}

	for i := 0; i < numPosts; i++ {
		// Every third post stays a draft so the admin listing differs
		// from the public one.
		published := i%3 != 0
		if _, err := s.factory.CreatePost(categories, published); err != nil {
			return nil, fmt.Errorf("post seeding failed: %w", err)
		}
	}

	if err := s.factory.CreateServices(); err != nil {
		return nil, fmt.Errorf("service seeding failed: %w", err)
	}
	if err := s.factory.CreateTeamMembers(); err != nil {
		return nil, fmt.Errorf("team seeding failed: %w", err)
	}
	if err := s.factory.CreateGadgets(); err != nil {
		return nil, fmt.Errorf("gadget seeding failed: %w", err)
	}
	if err := s.factory.CreateSubscribers(25); err != nil {
		return nil, fmt.Errorf("newsletter seeding failed: %w", err)
	}

	return admin, nil
}
