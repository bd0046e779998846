package repository

import (
	"context"

	"sticobytes/internal/models"

	"gorm.io/gorm"
)

// GadgetRepository defines the interface for gadget catalog operations.
type GadgetRepository interface {
	Create(ctx context.Context, gadget *models.Gadget) error
	Update(ctx context.Context, gadget *models.Gadget) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Gadget, error)
	List(ctx context.Context, category string, stockStatus models.GadgetStockStatus, featuredOnly bool) ([]models.Gadget, error)
}

type gadgetRepository struct {
	db *gorm.DB
}

// NewGadgetRepository creates a new gadget repository.
func NewGadgetRepository(db *gorm.DB) GadgetRepository {
	return &gadgetRepository{db: db}
}

func (r *gadgetRepository) Create(ctx context.Context, gadget *models.Gadget) error {
	return r.db.WithContext(ctx).Create(gadget).Error
}

func (r *gadgetRepository) Update(ctx context.Context, gadget *models.Gadget) error {
	return r.db.WithContext(ctx).Save(gadget).Error
}

func (r *gadgetRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Gadget{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Gadget")
	}
	return nil
}

func (r *gadgetRepository) GetByID(ctx context.Context, id uint) (*models.Gadget, error) {
	var gadget models.Gadget
	if err := r.db.WithContext(ctx).First(&gadget, id).Error; err != nil {
		if isNotFound(err) {
			return nil, models.NewNotFoundError("Gadget")
		}
		return nil, err
	}
	return &gadget, nil
}

func (r *gadgetRepository) List(ctx context.Context, category string, stockStatus models.GadgetStockStatus, featuredOnly bool) ([]models.Gadget, error) {
	q := r.db.WithContext(ctx).Model(&models.Gadget{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if stockStatus != "" {
		q = q.Where("stock_status = ?", stockStatus)
	}
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}

	var gadgets []models.Gadget
	err := q.Order("name ASC").Find(&gadgets).Error
	return gadgets, err
}
