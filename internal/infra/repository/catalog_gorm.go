package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/catalog"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) GetByPublicID(
	ctx context.Context,
	publicID string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

func (r *CatalogGormRepository) List(
	ctx context.Context,
	includeInactive bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("status = ?", models.ServiceStatusActive)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) Create(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *CatalogGormRepository) Update(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Save(svc).Error
}
