package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Formas sem domínio são rejeitadas antes de qualquer consulta DNS
func TestHasDeliverableDomainRejectsMalformed(t *testing.T) {
	ctx := context.Background()

	assert.False(t, HasDeliverableDomain(ctx, "sem-arroba"))
	assert.False(t, HasDeliverableDomain(ctx, "user@"))
	assert.False(t, HasDeliverableDomain(ctx, "@dominio.com"))
	assert.False(t, HasDeliverableDomain(ctx, ""))
}
