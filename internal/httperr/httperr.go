package httperr

import (
	"errors"
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

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

var kindStatus = map[Kind]int{
	KindValidation:      http.StatusBadRequest,
	KindConflict:        http.StatusConflict,
	KindNotFound:        http.StatusNotFound,
	KindInvalidArgument: http.StatusBadRequest,
}

var kindMessage = map[Kind]string{
	KindValidation:      "Dados do agendamento inválidos.",
	KindConflict:        "Horário já reservado.",
	KindNotFound:        "Agendamento não encontrado.",
	KindInvalidArgument: "Data ou mês inválido.",
}

// Respond writes err as a typed JSON error. It reports false when err is not
// a BusinessError so the caller can log it before answering 500.
func Respond(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Erro inesperado.")
		return false
	}
	status, ok := kindStatus[be.Kind]
	if !ok {
		status = http.StatusBadRequest
	}
	Write(c, status, be.Code, kindMessage[be.Kind])
	return true
}
