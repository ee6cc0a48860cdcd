package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/barbereasy/barbereasy-api/internal/apperr"
	domain "github.com/barbereasy/barbereasy-api/internal/domain/schedule"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

func availabilityInput() GetAvailabilityInput {
	return GetAvailabilityInput{
		TenantID:  1,
		BarberID:  20,
		ServiceID: 30,
		Date:      "2026-09-01", // terça-feira
	}
}

func TestGetAvailability(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetBarber", mock.Anything, uint(1), uint(20)).
		Return(&models.Barber{ID: 20, Status: models.BarberStatusActive}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(30)).
		Return(&models.Service{ID: 30, Duration: 30}, nil)
	repo.On("GetSettings", mock.Anything, uint(1)).
		Return(&models.ShopSettings{
			TenantID:     1,
			OpeningTime:  "09:00",
			ClosingTime:  "11:00",
			DaysOpen:     models.DaysOpen{1, 2, 3, 4, 5},
			SlotDuration: 30,
		}, true, nil)
	repo.On("ListAppointmentsForBarberDate", mock.Anything, uint(1), uint(20), "2026-09-01").
		Return([]models.Appointment{
			{StartTime: "09:30", EndTime: "10:00", Status: "confirmed"},
		}, nil)

	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())

	assert.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{
		{Start: "09:00", End: "09:30"},
		{Start: "10:00", End: "10:30"},
		{Start: "10:30", End: "11:00"},
	}, slots)
}

func TestGetAvailabilityFallsBackToDefaults(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetBarber", mock.Anything, uint(1), uint(20)).
		Return(&models.Barber{ID: 20}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(30)).
		Return(&models.Service{ID: 30, Duration: 30}, nil)
	repo.On("GetSettings", mock.Anything, uint(1)).
		Return(nil, false, nil)
	repo.On("ListAppointmentsForBarberDate", mock.Anything, uint(1), uint(20), "2026-09-01").
		Return([]models.Appointment{}, nil)

	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput())

	assert.NoError(t, err)
	// grade padrão 09:00–19:00 com passo de 30min
	assert.Len(t, slots, 20)
	assert.Equal(t, domain.TimeSlot{Start: "09:00", End: "09:30"}, slots[0])
	assert.Equal(t, domain.TimeSlot{Start: "18:30", End: "19:00"}, slots[19])
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	repo := new(mockRepository)
	uc := NewGetAvailability(repo)

	in := availabilityInput()
	in.Date = "hoje"

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, apperr.Is(err, "invalid_date"))
	repo.AssertNotCalled(t, "GetBarber")
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetBarber", mock.Anything, uint(1), uint(20)).
		Return(&models.Barber{ID: 20}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(30)).
		Return(nil, assert.AnError)

	uc := NewGetAvailability(repo)

	_, err := uc.Execute(context.Background(), availabilityInput())

	assert.True(t, apperr.Is(err, "service_not_found"))
}
