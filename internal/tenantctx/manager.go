package tenantctx

import (
	"context"
	"fmt"

	"github.com/barbereasy/barbereasy-api/internal/apperr"
	"github.com/barbereasy/barbereasy-api/internal/domain/tenant"
)

// State é o snapshot devolvido a cada refresh: tenant atual, lista
// visível e, quando o path apontava para um tenant alheio, a correção
// de navegação que o chamador deve aplicar
type State struct {
	Resolution tenant.Resolution      `json:"-"`
	Tenants    []tenant.TenantSummary `json:"tenants"`
	Current    *tenant.TenantSummary  `json:"current_tenant"`
	Corrected  bool                   `json:"corrected"`
	Target     string                 `json:"target,omitempty"`
}

type Manager struct {
	repo  tenant.Repository
	store *Store
}

func NewManager(repo tenant.Repository, store *Store) *Manager {
	return &Manager{repo: repo, store: store}
}

// Refresh roda o resolver de novo e reconcilia com o tenant codificado
// no path (0 quando o path não aponta para um tenant). Se o tenant do
// path não estiver entre os vínculos do usuário, cai no primeiro
// disponível e sinaliza a correção.
func (m *Manager) Refresh(
	ctx context.Context,
	userID string,
	pathTenantID uint,
) (State, error) {

	res := tenant.Resolve(ctx, m.repo, userID)
	if res.State == tenant.StateError {
		return State{}, apperr.Storage(
			res.Err,
			"tenant_resolution_failed",
			"Erro ao buscar informações da barbearia. Tente novamente.",
		)
	}

	st := State{
		Resolution: res,
		Tenants:    res.Tenants,
	}

	if pathTenantID != 0 {
		for i := range res.Tenants {
			if res.Tenants[i].ID == pathTenantID {
				st.Current = &res.Tenants[i]
				break
			}
		}
		if st.Current == nil && len(res.Tenants) > 0 {
			st.Current = &res.Tenants[0]
			st.Corrected = true
			st.Target = fmt.Sprintf("/dashboard/%d", res.Tenants[0].ID)
		}
	} else if res.State == tenant.StateSingleTenant {
		st.Current = &res.Tenants[0]
	}

	sess := &Session{TenantIDs: make([]uint, 0, len(res.Tenants))}
	for _, t := range res.Tenants {
		sess.TenantIDs = append(sess.TenantIDs, t.ID)
	}
	if st.Current != nil {
		sess.CurrentTenantID = st.Current.ID
	}

	if err := m.store.Save(ctx, userID, sess); err != nil {
		return State{}, apperr.Storage(err, "session_save_failed",
			"Erro ao salvar a sessão. Tente novamente.")
	}

	return st, nil
}

// Select fixa o tenant atual após escolha explícita (fluxo multi-tenant).
// A escolha é validada antes de qualquer escrita: seleção rejeitada não
// altera a sessão.
func (m *Manager) Select(
	ctx context.Context,
	userID string,
	tenantID uint,
) (State, error) {

	res := tenant.Resolve(ctx, m.repo, userID)
	if res.State == tenant.StateError {
		return State{}, apperr.Storage(
			res.Err,
			"tenant_resolution_failed",
			"Erro ao buscar informações da barbearia. Tente novamente.",
		)
	}

	st := State{
		Resolution: res,
		Tenants:    res.Tenants,
	}
	for i := range res.Tenants {
		if res.Tenants[i].ID == tenantID {
			st.Current = &res.Tenants[i]
			break
		}
	}
	if st.Current == nil {
		return State{}, apperr.NotFound(
			"tenant_not_found",
			"Barbearia não encontrada para este usuário.",
		)
	}

	sess := &Session{
		CurrentTenantID: tenantID,
		TenantIDs:       make([]uint, 0, len(res.Tenants)),
	}
	for _, t := range res.Tenants {
		sess.TenantIDs = append(sess.TenantIDs, t.ID)
	}

	if err := m.store.Save(ctx, userID, sess); err != nil {
		return State{}, apperr.Storage(err, "session_save_failed",
			"Erro ao salvar a sessão. Tente novamente.")
	}

	return st, nil
}

// HasMembership confere se o usuário pode operar o tenant, usando a
// sessão em cache e caindo para o resolver quando ela não existe
func (m *Manager) HasMembership(
	ctx context.Context,
	userID string,
	tenantID uint,
) (bool, error) {

	if sess, ok, err := m.store.Get(ctx, userID); err == nil && ok {
		for _, id := range sess.TenantIDs {
			if id == tenantID {
				return true, nil
			}
		}
		// sessão pode estar desatualizada (tenant recém-criado);
		// revalida abaixo antes de negar
	}

	res := tenant.Resolve(ctx, m.repo, userID)
	if res.State == tenant.StateError {
		return false, res.Err
	}
	for _, t := range res.Tenants {
		if t.ID == tenantID {
			return true, nil
		}
	}
	return false, nil
}

// SignOut derruba o estado de tenant da sessão
func (m *Manager) SignOut(ctx context.Context, userID string) error {
	return m.store.Clear(ctx, userID)
}
