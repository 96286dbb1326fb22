package repositories

import (
	"context"

	"gorm.io/gorm"

	"swagshop/internal/models"
)

// ShippingOptionRepository defines shipping configuration persistence.
type ShippingOptionRepository interface {
	List(ctx context.Context) ([]models.ShippingOption, error)
	GetByID(ctx context.Context, id string) (*models.ShippingOption, error)
	Create(ctx context.Context, option *models.ShippingOption) error
}

type shippingOptionRepository struct {
	db *gorm.DB
}

// NewShippingOptionRepository creates a new shipping option repository
func NewShippingOptionRepository(db *gorm.DB) ShippingOptionRepository {
	return &shippingOptionRepository{db: db}
}

func (r *shippingOptionRepository) List(ctx context.Context) ([]models.ShippingOption, error) {
	var options []models.ShippingOption
	err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&options).Error
	return options, err
}

func (r *shippingOptionRepository) GetByID(ctx context.Context, id string) (*models.ShippingOption, error) {
	var option models.ShippingOption
	if err := r.db.WithContext(ctx).First(&option, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrShippingOptionNotFound
		}
		return nil, err
	}
	return &option, nil
}

func (r *shippingOptionRepository) Create(ctx context.Context, option *models.ShippingOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}
