package schedule

import "github.com/barbereasy/barbereasy-api/internal/models"

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots gera os horários livres de um barbeiro em um dia, a partir
// da grade da barbearia (abertura, fechamento, passo do slot) e dos
// agendamentos já ocupados. Agendamentos cancelados não bloqueiam.
func FreeSlots(
	st models.ShopSettings,
	serviceDuration int,
	weekday int,
	taken []models.Appointment,
) []TimeSlot {

	slots := []TimeSlot{}

	if !st.DaysOpen.Contains(weekday) {
		return slots
	}

	open, err := ParseHM(st.OpeningTime)
	if err != nil {
		return slots
	}
	closing, err := ParseHM(st.ClosingTime)
	if err != nil {
		return slots
	}

	step := st.SlotDuration
	if step <= 0 {
		step = 30
	}
	if serviceDuration <= 0 {
		return slots
	}

	type span struct{ start, end int }
	busy := make([]span, 0, len(taken))
	for _, ap := range taken {
		if ap.Status == string(StatusCancelled) {
			continue
		}
		s, err1 := ParseHM(ap.StartTime)
		e, err2 := ParseHM(ap.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		busy = append(busy, span{start: s, end: e})
	}

	for cur := open; cur+serviceDuration <= closing; cur += step {
		slotStart := cur
		slotEnd := cur + serviceDuration

		conflict := false
		for _, b := range busy {
			if slotStart < b.end && slotEnd > b.start {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: FormatHM(slotStart),
				End:   FormatHM(slotEnd),
			})
		}
	}

	return slots
}
