package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
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

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond converte um erro de negócio tipado na resposta HTTP
// correspondente. Erros desconhecidos viram 500 sem vazar detalhes.
func Respond(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", "Erro interno. Tente novamente mais tarde.")
		return
	}

	switch be.Kind {
	case KindFormat, KindValidation:
		BadRequest(c, be.Code, be.Message)
	case KindNotFound:
		NotFound(c, be.Code, be.Message)
	case KindForbidden:
		Forbidden(c, be.Code, be.Message)
	case KindConflict:
		Conflict(c, be.Code, be.Message)
	default:
		Internal(c, "internal_error", "Erro interno. Tente novamente mais tarde.")
	}
}
