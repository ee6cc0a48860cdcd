package appointment

import (
	"context"

	"github.com/barbereasy/barbereasy-api/internal/apperr"
	domain "github.com/barbereasy/barbereasy-api/internal/domain/schedule"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

type GetAvailabilityInput struct {
	TenantID  uint
	BarberID  uint
	ServiceID uint
	Date      string
}

// GetAvailability deriva os horários livres da grade da barbearia
// (ShopSettings) menos os agendamentos já marcados do barbeiro
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]domain.TimeSlot, error) {

	weekday, err := domain.Weekday(in.Date)
	if err != nil {
		return nil, apperr.Validation("invalid_date", "Data inválida.")
	}

	if _, err := uc.repo.GetBarber(ctx, in.TenantID, in.BarberID); err != nil {
		return nil, apperr.Validation("barber_not_found", "Barbeiro não encontrado.")
	}

	service, err := uc.repo.GetService(ctx, in.TenantID, in.ServiceID)
	if err != nil {
		return nil, apperr.Validation("service_not_found", "Serviço não encontrado.")
	}

	settings, found, err := uc.repo.GetSettings(ctx, in.TenantID)
	if err != nil {
		return nil, apperr.Storage(err, "failed_to_get_settings",
			"Erro ao buscar configurações.")
	}
	if !found {
		def := models.DefaultSettings(in.TenantID)
		settings = &def
	}

	taken, err := uc.repo.ListAppointmentsForBarberDate(
		ctx,
		in.TenantID,
		in.BarberID,
		in.Date,
	)
	if err != nil {
		return nil, apperr.Storage(err, "failed_to_list_appointments",
			"Erro ao listar agendamentos.")
	}

	return domain.FreeSlots(*settings, service.Duration, weekday, taken), nil
}
