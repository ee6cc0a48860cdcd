package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbereasy/barbereasy-api/internal/audit"
	domain "github.com/barbereasy/barbereasy-api/internal/domain/schedule"
	"github.com/barbereasy/barbereasy-api/internal/httperr"
	"github.com/barbereasy/barbereasy-api/internal/httpresp"
	"github.com/barbereasy/barbereasy-api/internal/middleware"
	ucAppointment "github.com/barbereasy/barbereasy-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	listUC         *ucAppointment.ListAppointments
	detailUC       *ucAppointment.GetAppointmentDetail
	availabilityUC *ucAppointment.GetAvailability

	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListAppointments,
	detailUC *ucAppointment.GetAppointmentDetail,
	availabilityUC *ucAppointment.GetAvailability,
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		cancelUC:       cancelUC,
		listUC:         listUC,
		detailUC:       detailUC,
		availabilityUC: availabilityUC,
		repo:           repo,
		audit:          audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientID  uint   `json:"client_id"`
	BarberID  uint   `json:"barber_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}

func appointmentID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id64 == 0 {
		httperr.BadRequest(c, "invalid_appointment_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id64), true
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		TenantID:  tenantID,
		UserID:    userID,
		ClientID:  req.ClientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		TenantID:      tenantID,
		UserID:        userID,
		AppointmentID: id,
		ClientID:      req.ClientID,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Status:        req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), tenantID, userID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(uint)

	filter := domain.AppointmentFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}
	if raw := c.Query("barber_id"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Identificador de barbeiro inválido.")
			return
		}
		filter.BarberID = uint(id64)
	}

	out, err := h.listUC.Execute(c.Request.Context(), tenantID, filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Detail(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(uint)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.detailUC.Execute(c.Request.Context(), tenantID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if _, err := h.repo.GetAppointment(c.Request.Context(), tenantID, id); err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if err := h.repo.DeleteAppointment(c.Request.Context(), tenantID, id); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(uint)

	barberID, err1 := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	serviceID, err2 := strconv.ParseUint(c.Query("service_id"), 10, 32)
	date := c.Query("date")

	if err1 != nil || err2 != nil || date == "" {
		httperr.BadRequest(c, "missing_parameters",
			"Informe barber_id, service_id e date.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), ucAppointment.GetAvailabilityInput{
		TenantID:  tenantID,
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, slots)
}
