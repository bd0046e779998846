package repository

import (
	"context"

	"sticobytes/internal/models"

	"gorm.io/gorm"
)

// ServiceRepository defines the interface for agency service offerings.
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	List(ctx context.Context, category string, featuredOnly bool) ([]models.Service, error)
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) Update(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Service")
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if isNotFound(err) {
			return nil, models.NewNotFoundError("Service")
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) List(ctx context.Context, category string, featuredOnly bool) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Model(&models.Service{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}

	var services []models.Service
	err := q.Order("title ASC").Find(&services).Error
	return services, err
}
