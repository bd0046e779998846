package repository

import (
	"context"

	"sticobytes/internal/models"

	"gorm.io/gorm"
)

// TeamRepository defines the interface for team member data operations.
type TeamRepository interface {
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.TeamMember, error)
	ListActive(ctx context.Context) ([]models.TeamMember, error)
	ListAll(ctx context.Context) ([]models.TeamMember, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamRepository) Update(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *teamRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamMember{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Team member")
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id uint) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		if isNotFound(err) {
			return nil, models.NewNotFoundError("Team member")
		}
		return nil, err
	}
	return &member, nil
}

// ListActive returns only publicly visible members, ordered for display.
func (r *teamRepository) ListActive(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&members).Error
	return members, err
}

func (r *teamRepository) ListAll(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.WithContext(ctx).
		Order("display_order ASC, name ASC").
		Find(&members).Error
	return members, err
}
