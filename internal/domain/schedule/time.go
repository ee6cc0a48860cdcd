package schedule

import (
	"fmt"
	"time"
)

const (
	HMLayout   = "15:04"
	DateLayout = "2006-01-02"
)

const minutesPerDay = 24 * 60

// ParseHM converte "HH:MM" em minutos desde a meia-noite
func ParseHM(hm string) (int, error) {
	t, err := time.Parse(HMLayout, hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatHM(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes soma uma duração (em minutos) a um horário "HH:MM".
// O resultado dá a volta na meia-noite; wrapped indica quando isso ocorre.
func AddMinutes(start string, duration int) (end string, wrapped bool, err error) {
	if duration < 0 {
		return "", false, fmt.Errorf("negative duration %d", duration)
	}

	startMin, err := ParseHM(start)
	if err != nil {
		return "", false, err
	}

	total := startMin + duration
	return FormatHM(total), total >= minutesPerDay, nil
}

func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// Weekday devolve o dia da semana (0=domingo) de uma data "2006-01-02"
func Weekday(date string) (int, error) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(d.Weekday()), nil
}
