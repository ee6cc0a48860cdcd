package validators

import (
	"context"
	"net"
	"strings"
)

// HasDeliverableDomain confere se o domínio do e-mail existe de fato:
// aceita quando há registro MX ou, na falta dele, um registro de endereço.
// Não valida a caixa postal, só barra domínios digitados errado no cadastro.
func HasDeliverableDomain(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, domain)
	return err == nil && len(addrs) > 0
}
