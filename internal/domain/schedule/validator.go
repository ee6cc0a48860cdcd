package schedule

import "github.com/barbereasy/barbereasy-api/internal/apperr"

// Submission é o conjunto de campos exigidos antes de gravar
// um agendamento (criação ou edição)
type Submission struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint
	Date      string
	StartTime string
}

// ValidateSubmission rejeita o envio antes de qualquer escrita.
// É idempotente: o mesmo envio inválido falha sempre com o mesmo erro.
func ValidateSubmission(in Submission) error {
	if in.ClientID == 0 {
		return apperr.Validation("client_required", "Selecione um cliente.")
	}
	if in.BarberID == 0 {
		return apperr.Validation("barber_required", "Selecione um barbeiro.")
	}
	if in.ServiceID == 0 {
		return apperr.Validation("service_required", "Selecione um serviço.")
	}
	if in.StartTime == "" {
		return apperr.Validation("time_required", "Selecione um horário.")
	}
	if _, err := ParseHM(in.StartTime); err != nil {
		return apperr.Validation("invalid_time", "Horário inválido.")
	}
	if in.Date == "" {
		return apperr.Validation("date_required", "Selecione uma data.")
	}
	if _, err := ParseDate(in.Date); err != nil {
		return apperr.Validation("invalid_date", "Data inválida.")
	}
	return nil
}

// DeriveEndTime calcula o fim a partir do início e da duração do serviço.
// Agendamentos que atravessam a meia-noite não cabem no registro de
// data única e são rejeitados.
func DeriveEndTime(start string, durationMin int) (string, error) {
	end, wrapped, err := AddMinutes(start, durationMin)
	if err != nil {
		return "", apperr.Validation("invalid_time", "Horário inválido.")
	}
	if wrapped {
		return "", apperr.Validation(
			"ends_after_midnight",
			"O serviço terminaria após a meia-noite. Escolha um horário mais cedo.",
		)
	}
	return end, nil
}

// ValidateServiceFields garante os limites do cadastro de serviço
func ValidateServiceFields(durationMin int, price float64) error {
	if durationMin < 5 {
		return apperr.Validation("invalid_duration", "Duração mínima é de 5 minutos.")
	}
	if price < 0 {
		return apperr.Validation("invalid_price", "Preço não pode ser negativo.")
	}
	return nil
}
