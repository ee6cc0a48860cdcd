package appointment

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/barbereasy/barbereasy-api/internal/domain/schedule"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

type mockRepository struct {
	mock.Mock
}

var _ domain.Repository = (*mockRepository)(nil)

func (m *mockRepository) GetClient(ctx context.Context, tenantID, clientID uint) (*models.Client, error) {
	args := m.Called(ctx, tenantID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *mockRepository) GetBarber(ctx context.Context, tenantID, barberID uint) (*models.Barber, error) {
	args := m.Called(ctx, tenantID, barberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barber), args.Error(1)
}

func (m *mockRepository) GetService(ctx context.Context, tenantID, serviceID uint) (*models.Service, error) {
	args := m.Called(ctx, tenantID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *mockRepository) GetSettings(ctx context.Context, tenantID uint) (*models.ShopSettings, bool, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.ShopSettings), args.Bool(1), args.Error(2)
}

func (m *mockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) DeleteAppointment(ctx context.Context, tenantID, appointmentID uint) error {
	args := m.Called(ctx, tenantID, appointmentID)
	return args.Error(0)
}

func (m *mockRepository) GetAppointment(ctx context.Context, tenantID, appointmentID uint) (*models.Appointment, error) {
	args := m.Called(ctx, tenantID, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepository) GetAppointmentWithDetails(ctx context.Context, tenantID, appointmentID uint) (*models.Appointment, error) {
	args := m.Called(ctx, tenantID, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepository) AssertNoTimeConflict(ctx context.Context, tenantID, barberID uint, date, start, end string, excludeID uint) error {
	args := m.Called(ctx, tenantID, barberID, date, start, end, excludeID)
	return args.Error(0)
}

func (m *mockRepository) ListAppointments(ctx context.Context, tenantID uint, filter domain.AppointmentFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepository) ListAppointmentsForBarberDate(ctx context.Context, tenantID, barberID uint, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, tenantID, barberID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}
