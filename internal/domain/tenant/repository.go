package tenant

import (
	"context"

	"github.com/barbereasy/barbereasy-api/internal/models"
)

type Repository interface {
	ListMembershipTenantIDs(
		ctx context.Context,
		userID string,
	) ([]uint, error)

	ListTenantsByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Tenant, error)
}
