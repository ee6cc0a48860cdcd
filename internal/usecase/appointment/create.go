package appointment

import (
	"context"

	"github.com/barbereasy/barbereasy-api/internal/apperr"
	"github.com/barbereasy/barbereasy-api/internal/audit"
	domain "github.com/barbereasy/barbereasy-api/internal/domain/schedule"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	TenantID uint
	UserID   string

	ClientID  uint
	BarberID  uint
	ServiceID uint

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// 1. Campos obrigatórios, antes de qualquer escrita
	if err := domain.ValidateSubmission(domain.Submission{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		StartTime: in.Time,
	}); err != nil {
		return nil, err
	}

	// 2. Referências precisam resolver dentro do tenant
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

	// 3. Fim derivado da duração do serviço selecionado
	end, err := domain.DeriveEndTime(in.Time, service.Duration)
	if err != nil {
		return nil, err
	}

	// 4. Conflito de horário do barbeiro
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.TenantID,
		in.BarberID,
		in.Date,
		in.Time,
		end,
		0,
	); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		TenantID:  in.TenantID,
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		StartTime: in.Time,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, apperr.Storage(err, "failed_to_create_appointment",
			"Erro ao criar agendamento.")
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: in.TenantID,
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
