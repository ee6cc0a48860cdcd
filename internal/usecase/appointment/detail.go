package appointment

import (
	"context"

	"github.com/barbereasy/barbereasy-api/internal/apperr"
	domain "github.com/barbereasy/barbereasy-api/internal/domain/schedule"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

type GetAppointmentDetail struct {
	repo domain.Repository
}

func NewGetAppointmentDetail(repo domain.Repository) *GetAppointmentDetail {
	return &GetAppointmentDetail{repo: repo}
}

func (uc *GetAppointmentDetail) Execute(
	ctx context.Context,
	tenantID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentWithDetails(ctx, tenantID, appointmentID)
	if err != nil {
		return nil, apperr.NotFound("appointment_not_found",
			"Agendamento não encontrado.")
	}

	return ap, nil
}
