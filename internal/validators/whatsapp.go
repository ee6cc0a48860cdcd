package validators

import "strings"

// NormalizeWhatsapp remove máscara e separadores, mantendo só dígitos
func NormalizeWhatsapp(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidWhatsapp aceita números com DDD, com ou sem código do país
func IsValidWhatsapp(digits string) bool {
	return len(digits) >= 10 && len(digits) <= 13
}
