package repositories

import (
	"context"

	"gorm.io/gorm"

	"swagshop/internal/models"
)

// MerchantRepository defines merchant persistence operations.
type MerchantRepository interface {
	Get(ctx context.Context) (*models.Merchant, error)
	Create(ctx context.Context, merchant *models.Merchant) error
}

type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &merchantRepository{db: db}
}

// Get returns the single merchant configured for this deployment.
func (r *merchantRepository) Get(ctx context.Context) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := r.db.WithContext(ctx).First(&merchant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return &merchant, nil
}

func (r *merchantRepository) Create(ctx context.Context, merchant *models.Merchant) error {
	return r.db.WithContext(ctx).Create(merchant).Error
}
