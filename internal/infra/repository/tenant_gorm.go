package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/barbereasy/barbereasy-api/internal/domain/tenant"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

type TenantGormRepository struct {
	db *gorm.DB
}

func NewTenantGormRepository(db *gorm.DB) *TenantGormRepository {
	return &TenantGormRepository{db: db}
}

func (r *TenantGormRepository) ListMembershipTenantIDs(
	ctx context.Context,
	userID string,
) ([]uint, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.UserTenant{}).
		Where("user_id = ?", userID).
		Pluck("tenant_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *TenantGormRepository) ListTenantsByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Tenant, error) {

	if len(ids) == 0 {
		return []models.Tenant{}, nil
	}

	var tenants []models.Tenant
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// CreateTenantWithOwner cria a barbearia e o vínculo "owner" na mesma
// transação; o fluxo de cadastro nunca cria um sem o outro
func (r *TenantGormRepository) CreateTenantWithOwner(
	ctx context.Context,
	t *models.Tenant,
	userID string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}

		link := models.UserTenant{
			UserID:   userID,
			TenantID: t.ID,
			Role:     "owner",
		}
		return tx.Create(&link).Error
	})
}

// Compile-time check
var _ domain.Repository = (*TenantGormRepository)(nil)
