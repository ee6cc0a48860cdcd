package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barbereasy/barbereasy-api/internal/audit"
	"github.com/barbereasy/barbereasy-api/internal/domain/tenant"
	"github.com/barbereasy/barbereasy-api/internal/httperr"
	"github.com/barbereasy/barbereasy-api/internal/infra/repository"
	"github.com/barbereasy/barbereasy-api/internal/middleware"
	"github.com/barbereasy/barbereasy-api/internal/models"
	"github.com/barbereasy/barbereasy-api/internal/tenantctx"
	"github.com/barbereasy/barbereasy-api/internal/validators"
)

type TenantHandler struct {
	repo    *repository.TenantGormRepository
	manager *tenantctx.Manager
	audit   *audit.Dispatcher
}

func NewTenantHandler(
	repo *repository.TenantGormRepository,
	manager *tenantctx.Manager,
	audit *audit.Dispatcher,
) *TenantHandler {
	return &TenantHandler{
		repo:    repo,
		manager: manager,
		audit:   audit,
	}
}

// --------- Requests ---------

type CreateTenantRequest struct {
	Name           string `json:"name" binding:"required"`
	OwnerName      string `json:"owner_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	WhatsappNumber string `json:"whatsapp_number"`
}

type SelectTenantRequest struct {
	TenantID uint `json:"tenant_id" binding:"required"`
}

// ======================================================
// RESOLUÇÃO (decisão de navegação pós-login)
// ======================================================

func (h *TenantHandler) Resolution(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	res := tenant.Resolve(c.Request.Context(), h.repo, userID)
	if res.State == tenant.StateError {
		// erro recuperável: o front mostra retry / voltar ao login
		httperr.Respond(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":   res.State,
		"target":  res.NavigationTarget(),
		"tenants": res.Tenants,
	})
}

// ======================================================
// CONTEXTO DE TENANT DA SESSÃO
// ======================================================

// MyTenants atualiza o contexto a cada navegação; ?current carrega o
// tenant codificado no path atual do front
func (h *TenantHandler) MyTenants(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var current uint
	if raw := c.Query("current"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_tenant_id", "Identificador de barbearia inválido.")
			return
		}
		current = uint(id64)
	}

	st, err := h.manager.Refresh(c.Request.Context(), userID, current)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, st)
}

func (h *TenantHandler) Select(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req SelectTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	st, err := h.manager.Select(c.Request.Context(), userID, req.TenantID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, st)
}

// ======================================================
// CRIAÇÃO DE TENANT (fluxo new-tenant)
// ======================================================

func (h *TenantHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	whatsapp := validators.NormalizeWhatsapp(req.WhatsappNumber)
	if req.WhatsappNumber != "" && !validators.IsValidWhatsapp(whatsapp) {
		httperr.BadRequest(c, "invalid_whatsapp", "Número de WhatsApp inválido.")
		return
	}

	t := models.Tenant{
		Name:           req.Name,
		OwnerName:      req.OwnerName,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		WhatsappNumber: whatsapp,
	}

	if err := h.repo.CreateTenantWithOwner(c.Request.Context(), &t, userID); err != nil {
		httperr.Internal(c, "failed_to_create_tenant", "Erro ao criar barbearia. Tente novamente.")
		return
	}

	// sessão atualizada já com o novo tenant como atual
	if _, err := h.manager.Refresh(c.Request.Context(), userID, t.ID); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		TenantID: t.ID,
		UserID:   &userID,
		Action:   "tenant_created",
		Entity:   "tenant",
		EntityID: &t.ID,
	})

	c.JSON(http.StatusCreated, t)
}
