package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHM(t *testing.T) {
	min, err := ParseHM("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, min)

	min, err = ParseHM("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, min)

	_, err = ParseHM("9h30")
	assert.Error(t, err)

	_, err = ParseHM("25:00")
	assert.Error(t, err)

	_, err = ParseHM("")
	assert.Error(t, err)
}

func TestFormatHM(t *testing.T) {
	assert.Equal(t, "09:05", FormatHM(545))
	assert.Equal(t, "00:00", FormatHM(0))
	assert.Equal(t, "00:10", FormatHM(24*60+10))
}

func TestAddMinutes(t *testing.T) {
	end, wrapped, err := AddMinutes("09:00", 45)
	assert.NoError(t, err)
	assert.False(t, wrapped)
	assert.Equal(t, "09:45", end)

	// duração zero não move o ponteiro
	end, wrapped, err = AddMinutes("14:00", 0)
	assert.NoError(t, err)
	assert.False(t, wrapped)
	assert.Equal(t, "14:00", end)

	// atravessa a meia-noite
	end, wrapped, err = AddMinutes("23:40", 30)
	assert.NoError(t, err)
	assert.True(t, wrapped)
	assert.Equal(t, "00:10", end)

	// exatamente meia-noite conta como volta
	_, wrapped, err = AddMinutes("23:30", 30)
	assert.NoError(t, err)
	assert.True(t, wrapped)

	_, _, err = AddMinutes("09:00", -10)
	assert.Error(t, err)

	_, _, err = AddMinutes("abc", 30)
	assert.Error(t, err)
}

func TestWeekday(t *testing.T) {
	// 2026-09-01 é uma terça-feira
	wd, err := Weekday("2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, 2, wd)

	// 2026-09-06 é um domingo
	wd, err = Weekday("2026-09-06")
	assert.NoError(t, err)
	assert.Equal(t, 0, wd)

	_, err = Weekday("01/09/2026")
	assert.Error(t, err)
}
