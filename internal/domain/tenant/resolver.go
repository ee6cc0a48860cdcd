package tenant

import (
	"context"
	"fmt"
)

// ===============================
// Resolução de tenant
// ===============================

// State é o resultado terminal de uma passada de resolução.
// A decisão de navegação é devolvida ao chamador; nenhum redirect
// acontece aqui dentro.
type State string

const (
	StateNoTenant     State = "no_tenant"
	StateSingleTenant State = "single_tenant"
	StateMultiTenant  State = "multi_tenant"
	StateError        State = "error"
)

type Resolution struct {
	State   State
	Tenants []TenantSummary
	Err     error
}

type TenantSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NavigationTarget traduz o estado terminal no destino que o front
// deve seguir. Estado de erro não navega: o chamador mostra o erro
// e oferece tentar de novo.
func (r Resolution) NavigationTarget() string {
	switch r.State {
	case StateNoTenant:
		return "/dashboard/new-tenant"
	case StateSingleTenant:
		return fmt.Sprintf("/dashboard/%d", r.Tenants[0].ID)
	case StateMultiTenant:
		return "/dashboard/select-tenant"
	default:
		return ""
	}
}

// Resolve determina os tenants de um usuário autenticado. Só faz
// leituras; pode ser chamada repetidas vezes (a cada navegação) e,
// para o mesmo conjunto de vínculos, devolve sempre o mesmo estado.
func Resolve(ctx context.Context, repo Repository, userID string) Resolution {
	ids, err := repo.ListMembershipTenantIDs(ctx, userID)
	if err != nil {
		return Resolution{State: StateError, Err: err}
	}

	if len(ids) == 0 {
		return Resolution{State: StateNoTenant, Tenants: []TenantSummary{}}
	}

	tenants, err := repo.ListTenantsByIDs(ctx, ids)
	if err != nil {
		return Resolution{State: StateError, Err: err}
	}

	// Vínculos que não resolvem para um registro de tenant são
	// tratados como inexistentes
	summaries := make([]TenantSummary, 0, len(tenants))
	for _, t := range tenants {
		summaries = append(summaries, TenantSummary{
			ID:    t.ID,
			Name:  t.Name,
			Email: t.Email,
		})
	}

	switch len(summaries) {
	case 0:
		return Resolution{State: StateNoTenant, Tenants: summaries}
	case 1:
		return Resolution{State: StateSingleTenant, Tenants: summaries}
	default:
		return Resolution{State: StateMultiTenant, Tenants: summaries}
	}
}
