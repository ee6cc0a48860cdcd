package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbereasy/barbereasy-api/internal/models"
)

func TestListMembershipTenantIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantGormRepository(db)
	ctx := context.Background()

	tenantA := seedTenant(t, db, "barbearia-a")
	tenantB := seedTenant(t, db, "barbearia-b")

	require.NoError(t, db.Create(&models.UserTenant{UserID: "user-1", TenantID: tenantA, Role: "owner"}).Error)
	require.NoError(t, db.Create(&models.UserTenant{UserID: "user-2", TenantID: tenantB, Role: "owner"}).Error)

	ids, err := repo.ListMembershipTenantIDs(ctx, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, []uint{tenantA}, ids)

	// usuário sem vínculo não enxerga tenant nenhum
	ids, err = repo.ListMembershipTenantIDs(ctx, "user-3")
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListTenantsByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantGormRepository(db)
	ctx := context.Background()

	tenantA := seedTenant(t, db, "barbearia-a")
	seedTenant(t, db, "barbearia-b")

	tenants, err := repo.ListTenantsByIDs(ctx, []uint{tenantA})
	assert.NoError(t, err)
	assert.Len(t, tenants, 1)
	assert.Equal(t, "barbearia-a", tenants[0].Name)

	tenants, err = repo.ListTenantsByIDs(ctx, []uint{})
	assert.NoError(t, err)
	assert.Empty(t, tenants)
}

func TestCreateTenantWithOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenantGormRepository(db)
	ctx := context.Background()

	tn := models.Tenant{Name: "Barbearia do Zé", OwnerName: "Zé", Email: "ze@example.com"}
	require.NoError(t, repo.CreateTenantWithOwner(ctx, &tn, "user-1"))
	assert.NotZero(t, tn.ID)

	// barbearia e vínculo owner nascem juntos
	ids, err := repo.ListMembershipTenantIDs(ctx, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, []uint{tn.ID}, ids)

	var link models.UserTenant
	require.NoError(t, db.Where("user_id = ? AND tenant_id = ?", "user-1", tn.ID).First(&link).Error)
	assert.Equal(t, "owner", link.Role)
}
