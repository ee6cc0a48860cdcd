package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barbereasy/barbereasy-api/internal/apperr"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond converte qualquer erro da camada de aplicação em resposta HTTP.
// Falhas de storage e inesperadas são logadas; as demais só respondidas.
func Respond(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Unexpected(err)
	}

	switch ae.Kind {
	case apperr.KindAuth:
		Write(c, http.StatusUnauthorized, ae.Code, ae.Message)
	case apperr.KindValidation:
		Write(c, http.StatusUnprocessableEntity, ae.Code, ae.Message)
	case apperr.KindNotFound:
		Write(c, http.StatusNotFound, ae.Code, ae.Message)
	case apperr.KindConflict:
		Write(c, http.StatusConflict, ae.Code, ae.Message)
	case apperr.KindStorage:
		log.Error().Err(ae.Err).Str("code", ae.Code).Msg("storage failure")
		Write(c, http.StatusInternalServerError, ae.Code, ae.Message)
	default:
		log.Error().Err(ae.Err).Str("path", c.FullPath()).Msg("unexpected failure")
		Write(c, http.StatusInternalServerError, ae.Code, ae.Message)
	}
}
