package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbereasy/barbereasy-api/internal/audit"
	"github.com/barbereasy/barbereasy-api/internal/domain/schedule"
	"github.com/barbereasy/barbereasy-api/internal/httperr"
	"github.com/barbereasy/barbereasy-api/internal/middleware"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

type SettingsHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSettingsHandler(db *gorm.DB, audit *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{db: db, audit: audit}
}

type SettingsRequest struct {
	OpeningTime        string `json:"opening_time" binding:"required"`
	ClosingTime        string `json:"closing_time" binding:"required"`
	DaysOpen           []int  `json:"days_open" binding:"required"`
	SlotDuration       int    `json:"slot_duration" binding:"required"`
	CancellationPolicy string `json:"cancellation_policy"`
}

// Get devolve os defaults enquanto o tenant não salvar a própria grade;
// nada é materializado no banco na leitura
func (h *SettingsHandler) Get(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(uint)

	var st models.ShopSettings
	err := h.db.Where("tenant_id = ?", tenantID).First(&st).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, models.DefaultSettings(tenantID))
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_settings", "Erro ao buscar configurações.")
		return
	}

	c.JSON(http.StatusOK, st)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	open, err := schedule.ParseHM(req.OpeningTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_opening_time", "Horário de abertura inválido.")
		return
	}
	closing, err := schedule.ParseHM(req.ClosingTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_closing_time", "Horário de fechamento inválido.")
		return
	}
	if closing <= open {
		httperr.BadRequest(c, "invalid_hours", "Fechamento deve ser depois da abertura.")
		return
	}

	if req.SlotDuration <= 0 {
		httperr.BadRequest(c, "invalid_slot_duration", "Duração do slot deve ser positiva.")
		return
	}

	for _, d := range req.DaysOpen {
		if d < 0 || d > 6 {
			httperr.BadRequest(c, "invalid_days_open", "Dias da semana vão de 0 (domingo) a 6 (sábado).")
			return
		}
	}

	var st models.ShopSettings
	err = h.db.Where("tenant_id = ?", tenantID).First(&st).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Internal(c, "failed_to_get_settings", "Erro ao buscar configurações.")
		return
	}

	st.TenantID = tenantID
	st.OpeningTime = req.OpeningTime
	st.ClosingTime = req.ClosingTime
	st.DaysOpen = models.DaysOpen(req.DaysOpen)
	st.SlotDuration = req.SlotDuration
	st.CancellationPolicy = req.CancellationPolicy

	if err := h.db.Save(&st).Error; err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Erro ao salvar configurações.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   &userID,
		Action:   "settings_updated",
		Entity:   "shop_settings",
		EntityID: &st.ID,
	})

	c.JSON(http.StatusOK, st)
}
