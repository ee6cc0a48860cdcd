package schedule

import (
	"context"

	"github.com/barbereasy/barbereasy-api/internal/models"
)

// AppointmentFilter restringe a listagem; campos zerados são ignorados
type AppointmentFilter struct {
	Date     string
	BarberID uint
	Status   string
}

// Repository é a superfície de persistência dos casos de uso de agenda.
// Toda consulta é obrigatoriamente filtrada por tenantID.
type Repository interface {
	// -------- Referências --------
	GetClient(
		ctx context.Context,
		tenantID uint,
		clientID uint,
	) (*models.Client, error)

	GetBarber(
		ctx context.Context,
		tenantID uint,
		barberID uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		tenantID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Configuração da barbearia --------
	GetSettings(
		ctx context.Context,
		tenantID uint,
	) (*models.ShopSettings, bool, error)

	// -------- Agendamentos --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		tenantID uint,
		appointmentID uint,
	) error

	GetAppointment(
		ctx context.Context,
		tenantID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentWithDetails(
		ctx context.Context,
		tenantID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	AssertNoTimeConflict(
		ctx context.Context,
		tenantID uint,
		barberID uint,
		date string,
		start string,
		end string,
		excludeID uint,
	) error

	ListAppointments(
		ctx context.Context,
		tenantID uint,
		filter AppointmentFilter,
	) ([]models.Appointment, error)

	ListAppointmentsForBarberDate(
		ctx context.Context,
		tenantID uint,
		barberID uint,
		date string,
	) ([]models.Appointment, error)
}
