package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barbereasy/barbereasy-api/internal/config"
	"github.com/barbereasy/barbereasy-api/internal/models"
)

type mailerSpy struct {
	sent []string
}

func (m *mailerSpy) SendPasswordReset(to string, token string) error {
	m.sent = append(m.sent, to)
	return nil
}

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.PasswordReset{}))
	return db
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func TestRecoverSendsResetMail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newAuthTestDB(t)

	require.NoError(t, db.Create(&models.User{
		ID: "u-1", Name: "Ana", Email: "ana@example.com", PasswordHash: "x",
	}).Error)

	spy := &mailerSpy{}
	h := NewAuthHandler(db, &config.Config{JWTSecret: "secret"}, spy, nil)

	w := postJSON(t, h.Recover, "/api/auth/recover", `{"email":"ana@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"ana@example.com"}, spy.sent)

	var count int64
	require.NoError(t, db.Model(&models.PasswordReset{}).Where("user_id = ?", "u-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecoverUnknownEmailStillOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newAuthTestDB(t)

	spy := &mailerSpy{}
	h := NewAuthHandler(db, &config.Config{JWTSecret: "secret"}, spy, nil)

	w := postJSON(t, h.Recover, "/api/auth/recover", `{"email":"ninguem@example.com"}`)

	// resposta idêntica à de conta existente
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, spy.sent)
}

func TestRecoverStorageFailureStillOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newAuthTestDB(t)

	require.NoError(t, db.Create(&models.User{
		ID: "u-1", Name: "Ana", Email: "ana@example.com", PasswordHash: "x",
	}).Error)

	// força a falha de escrita do token
	require.NoError(t, db.Migrator().DropTable(&models.PasswordReset{}))

	spy := &mailerSpy{}
	h := NewAuthHandler(db, &config.Config{JWTSecret: "secret"}, spy, nil)

	w := postJSON(t, h.Recover, "/api/auth/recover", `{"email":"ana@example.com"}`)

	// a falha vai para o log; a resposta não muda nem dispara e-mail
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, spy.sent)
}
