package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhatsapp(t *testing.T) {
	assert.Equal(t, "11987654321", NormalizeWhatsapp("(11) 98765-4321"))
	assert.Equal(t, "5511987654321", NormalizeWhatsapp("+55 11 98765-4321"))
	assert.Equal(t, "", NormalizeWhatsapp("sem número"))
}

func TestIsValidWhatsapp(t *testing.T) {
	assert.True(t, IsValidWhatsapp("1187654321"))      // fixo com DDD
	assert.True(t, IsValidWhatsapp("11987654321"))     // celular com DDD
	assert.True(t, IsValidWhatsapp("5511987654321"))   // com código do país
	assert.False(t, IsValidWhatsapp("987654321"))      // sem DDD
	assert.False(t, IsValidWhatsapp("55511987654321")) // longo demais
	assert.False(t, IsValidWhatsapp(""))
}
