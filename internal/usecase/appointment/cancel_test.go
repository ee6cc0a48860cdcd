package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/barbereasy/barbereasy-api/internal/apperr"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

func TestCancelAppointment(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetAppointment", mock.Anything, uint(1), uint(5)).
		Return(&models.Appointment{ID: 5, TenantID: 1, Status: "confirmed"}, nil)
	repo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(ap *models.Appointment) bool {
		return ap.Status == "cancelled"
	})).Return(nil)

	uc := NewCancelAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, "user-1", 5)

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
	repo.AssertExpectations(t)
}

func TestCancelAppointmentAlreadyCancelled(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetAppointment", mock.Anything, uint(1), uint(5)).
		Return(&models.Appointment{ID: 5, TenantID: 1, Status: "cancelled"}, nil)

	uc := NewCancelAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), 1, "user-1", 5)

	assert.True(t, apperr.Is(err, "invalid_state"))
	repo.AssertNotCalled(t, "UpdateAppointment")
}

func TestCancelAppointmentNotFound(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetAppointment", mock.Anything, uint(1), uint(5)).
		Return(nil, assert.AnError)

	uc := NewCancelAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), 1, "user-1", 5)

	assert.True(t, apperr.Is(err, "appointment_not_found"))
}
