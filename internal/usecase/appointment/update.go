package appointment

import (
	"context"

	"github.com/barbereasy/barbereasy-api/internal/apperr"
	"github.com/barbereasy/barbereasy-api/internal/audit"
	domain "github.com/barbereasy/barbereasy-api/internal/domain/schedule"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

type UpdateAppointmentInput struct {
	TenantID      uint
	UserID        string
	AppointmentID uint

	ClientID  uint
	BarberID  uint
	ServiceID uint

	Date   string
	Time   string
	Status string
}

// UpdateAppointment sobrescreve a linha inteira (semântica do form de
// edição). Escritas simultâneas seguem last-write-wins.
type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.TenantID, in.AppointmentID)
	if err != nil {
		return nil, apperr.NotFound("appointment_not_found",
			"Agendamento não encontrado.")
	}

	if err := domain.ValidateSubmission(domain.Submission{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		StartTime: in.Time,
	}); err != nil {
		return nil, err
	}

	if !domain.IsValidStatus(in.Status) {
		return nil, apperr.Validation("invalid_status", "Status inválido.")
	}

	if _, err := uc.repo.GetClient(ctx, in.TenantID, in.ClientID); err != nil {
		return nil, apperr.Validation("client_not_found", "Cliente não encontrado.")
	}
	barber, err := uc.repo.GetBarber(ctx, in.TenantID, in.BarberID)
	if err != nil {
		return nil, apperr.Validation("barber_not_found", "Barbeiro não encontrado.")
	}
	if barber.Status != models.BarberStatusActive {
		return nil, apperr.Validation("barber_inactive", "Barbeiro está inativo.")
	}

	service, err := uc.repo.GetService(ctx, in.TenantID, in.ServiceID)
	if err != nil {
		return nil, apperr.Validation("service_not_found", "Serviço não encontrado.")
	}

	// Fim sempre re-derivado do serviço selecionado na edição
	end, err := domain.DeriveEndTime(in.Time, service.Duration)
	if err != nil {
		return nil, err
	}

	if in.Status != string(domain.StatusCancelled) {
		if err := uc.repo.AssertNoTimeConflict(
			ctx,
			in.TenantID,
			in.BarberID,
			in.Date,
			in.Time,
			end,
			ap.ID,
		); err != nil {
			return nil, err
		}
	}

	ap.ClientID = in.ClientID
	ap.BarberID = in.BarberID
	ap.ServiceID = in.ServiceID
	ap.Date = in.Date
	ap.StartTime = in.Time
	ap.EndTime = end
	ap.Status = in.Status

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, apperr.Storage(err, "failed_to_update_appointment",
			"Erro ao atualizar agendamento.")
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: in.TenantID,
		UserID:   &in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
