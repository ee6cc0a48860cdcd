package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbereasy/barbereasy-api/internal/config"
	"github.com/barbereasy/barbereasy-api/internal/email"
	"github.com/barbereasy/barbereasy-api/internal/httperr"
	"github.com/barbereasy/barbereasy-api/internal/middleware"
	"github.com/barbereasy/barbereasy-api/internal/models"
	"github.com/barbereasy/barbereasy-api/internal/tenantctx"
	"github.com/barbereasy/barbereasy-api/internal/validators"
)

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	mailer  email.Sender
	tenants *tenantctx.Manager
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	mailer email.Sender,
	tenants *tenantctx.Manager,
) *AuthHandler {
	return &AuthHandler{
		db:      db,
		config:  cfg,
		mailer:  mailer,
		tenants: tenants,
	}
}

// --------- Requests ---------

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RecoverRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

// SignUp cria só a conta; a barbearia vem depois, no fluxo new-tenant
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.HasDeliverableDomain(c.Request.Context(), emailAddr) {
		httperr.BadRequest(c, "invalid_email_domain",
			"O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("email = ?", emailAddr).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar conta.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "E-mail já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar conta.")
		return
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        emailAddr,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar conta.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao criar sessão.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", emailAddr).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro ao entrar. Tente novamente.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao criar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"token": token,
	})
}

// Logout derruba o estado de tenant da sessão; o token em si só expira
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.tenants.SignOut(c.Request.Context(), userID); err != nil {
		httperr.Internal(c, "failed_to_sign_out", "Erro ao encerrar sessão.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Session(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", "Sessão inválida. Faça login novamente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Recover sempre responde 200: não revela se o e-mail existe
func (h *AuthHandler) Recover(c *gin.Context) {
	var req RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", emailAddr).First(&user).Error; err == nil {
		reset := models.PasswordReset{
			UserID:    user.ID,
			Token:     uuid.New().String(),
			ExpiresAt: time.Now().Add(time.Hour),
		}

		if err := h.db.Create(&reset).Error; err != nil {
			// resposta segue 200 para não revelar contas; a falha fica no log
			log.Error().Err(err).Msg("failed to store password reset token")
		} else if err := h.mailer.SendPasswordReset(user.Email, reset.Token); err != nil {
			httperr.Internal(c, "failed_to_send_email", "Erro ao enviar e-mail de recuperação.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) Reset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var reset models.PasswordReset
	if err := h.db.Where("token = ?", req.Token).First(&reset).Error; err != nil {
		httperr.BadRequest(c, "invalid_token", "Link de redefinição inválido ou já usado.")
		return
	}

	if time.Now().After(reset.ExpiresAt) {
		h.db.Delete(&reset)
		httperr.BadRequest(c, "token_expired", "Link de redefinição expirado. Solicite outro.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao redefinir senha.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", reset.UserID).
		Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "failed_to_reset_password", "Erro ao redefinir senha.")
		return
	}

	h.db.Delete(&reset)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
