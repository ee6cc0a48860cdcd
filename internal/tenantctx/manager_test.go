package tenantctx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/barbereasy/barbereasy-api/internal/apperr"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

type mockTenantRepo struct {
	mock.Mock
}

func (m *mockTenantRepo) ListMembershipTenantIDs(ctx context.Context, userID string) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *mockTenantRepo) ListTenantsByIDs(ctx context.Context, ids []uint) ([]models.Tenant, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tenant), args.Error(1)
}

func newTestManager(t *testing.T, repo *mockTenantRepo) (*Manager, *Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	store := NewStore(rdb, time.Hour)
	return NewManager(repo, store), store
}

func singleTenantRepo(id uint, name string) *mockTenantRepo {
	repo := new(mockTenantRepo)
	repo.On("ListMembershipTenantIDs", mock.Anything, mock.Anything).Return([]uint{id}, nil)
	repo.On("ListTenantsByIDs", mock.Anything, []uint{id}).Return([]models.Tenant{
		{ID: id, Name: name},
	}, nil)
	return repo
}

func TestRefreshSingleTenantBecomesCurrent(t *testing.T) {
	m, store := newTestManager(t, singleTenantRepo(7, "Barbearia do Zé"))

	st, err := m.Refresh(context.Background(), "user-1", 0)

	assert.NoError(t, err)
	assert.NotNil(t, st.Current)
	assert.Equal(t, uint(7), st.Current.ID)
	assert.False(t, st.Corrected)

	sess, ok, err := store.Get(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(7), sess.CurrentTenantID)
	assert.Equal(t, []uint{7}, sess.TenantIDs)
}

func TestRefreshPathTenantMatches(t *testing.T) {
	repo := new(mockTenantRepo)
	repo.On("ListMembershipTenantIDs", mock.Anything, mock.Anything).Return([]uint{7, 9}, nil)
	repo.On("ListTenantsByIDs", mock.Anything, []uint{7, 9}).Return([]models.Tenant{
		{ID: 7, Name: "Centro"},
		{ID: 9, Name: "Norte"},
	}, nil)

	m, _ := newTestManager(t, repo)

	st, err := m.Refresh(context.Background(), "user-1", 9)

	assert.NoError(t, err)
	assert.Equal(t, uint(9), st.Current.ID)
	assert.False(t, st.Corrected)
	assert.Empty(t, st.Target)
}

func TestRefreshPathMismatchIsCorrected(t *testing.T) {
	m, store := newTestManager(t, singleTenantRepo(7, "Barbearia do Zé"))

	// path aponta para tenant de outro usuário
	st, err := m.Refresh(context.Background(), "user-1", 99)

	assert.NoError(t, err)
	assert.True(t, st.Corrected)
	assert.Equal(t, uint(7), st.Current.ID)
	assert.Equal(t, "/dashboard/7", st.Target)

	sess, ok, _ := store.Get(context.Background(), "user-1")
	assert.True(t, ok)
	assert.Equal(t, uint(7), sess.CurrentTenantID)
}

func TestRefreshStorageError(t *testing.T) {
	boom := errors.New("db down")
	repo := new(mockTenantRepo)
	repo.On("ListMembershipTenantIDs", mock.Anything, mock.Anything).Return(nil, boom)

	m, _ := newTestManager(t, repo)

	_, err := m.Refresh(context.Background(), "user-1", 0)

	assert.True(t, apperr.Is(err, "tenant_resolution_failed"))
	assert.True(t, apperr.IsKind(err, apperr.KindStorage))
}

func TestSelectUnknownTenant(t *testing.T) {
	m, _ := newTestManager(t, singleTenantRepo(7, "Barbearia do Zé"))

	_, err := m.Select(context.Background(), "user-1", 99)
	assert.True(t, apperr.Is(err, "tenant_not_found"))

	st, err := m.Select(context.Background(), "user-1", 7)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), st.Current.ID)
}

func TestSelectRejectedDoesNotCreateSession(t *testing.T) {
	m, store := newTestManager(t, singleTenantRepo(7, "Barbearia do Zé"))

	_, err := m.Select(context.Background(), "user-1", 99)
	assert.True(t, apperr.Is(err, "tenant_not_found"))

	// seleção rejeitada não grava nada
	_, ok, err := store.Get(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSelectRejectedKeepsExistingSession(t *testing.T) {
	m, store := newTestManager(t, singleTenantRepo(7, "Barbearia do Zé"))

	_, err := m.Refresh(context.Background(), "user-1", 0)
	assert.NoError(t, err)

	_, err = m.Select(context.Background(), "user-1", 99)
	assert.True(t, apperr.Is(err, "tenant_not_found"))

	sess, ok, err := store.Get(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(7), sess.CurrentTenantID)
}

func TestHasMembershipUsesCachedSession(t *testing.T) {
	repo := singleTenantRepo(7, "Barbearia do Zé")
	m, _ := newTestManager(t, repo)

	_, err := m.Refresh(context.Background(), "user-1", 0)
	assert.NoError(t, err)

	ok, err := m.HasMembership(context.Background(), "user-1", 7)
	assert.NoError(t, err)
	assert.True(t, ok)

	// só o refresh bateu no repositório
	repo.AssertNumberOfCalls(t, "ListMembershipTenantIDs", 1)
}

func TestHasMembershipRevalidatesBeforeDenying(t *testing.T) {
	repo := singleTenantRepo(7, "Barbearia do Zé")
	m, _ := newTestManager(t, repo)

	// sem sessão em cache: cai no resolver
	ok, err := m.HasMembership(context.Background(), "user-1", 7)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.HasMembership(context.Background(), "user-1", 99)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSignOutClearsSession(t *testing.T) {
	m, store := newTestManager(t, singleTenantRepo(7, "Barbearia do Zé"))

	_, err := m.Refresh(context.Background(), "user-1", 0)
	assert.NoError(t, err)

	assert.NoError(t, m.SignOut(context.Background(), "user-1"))

	_, ok, err := store.Get(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreDiscardsCorruptedSession(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(rdb, time.Hour)

	assert.NoError(t, mr.Set("tenantctx:user-1", "not-json"))

	sess, ok, err := store.Get(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, sess)
}
