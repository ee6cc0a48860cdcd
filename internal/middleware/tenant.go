package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barbereasy/barbereasy-api/internal/tenantctx"
)

// TenantScope valida o :tenantId do path uma única vez e confirma que o
// usuário logado tem vínculo com ele. Dali em diante os handlers leem o
// id tipado do contexto, nunca mais da URL.
func TenantScope(manager *tenantctx.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(string)

		raw := c.Param("tenantId")
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id64 == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error_code": "invalid_tenant_id", "message": "Identificador de barbearia inválido."})
			return
		}
		tenantID := uint(id64)

		ok, err := manager.HasMembership(c.Request.Context(), userID, tenantID)
		if err != nil {
			log.Error().Err(err).Msg("membership check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error_code": "membership_check_failed", "message": "Erro ao validar acesso. Tente novamente."})
			return
		}
		if !ok {
			// 404 e não 403: não revela a existência de tenants alheios
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error_code": "tenant_not_found", "message": "Barbearia não encontrada."})
			return
		}

		c.Set(ContextTenantID, tenantID)
		c.Next()
	}
}
