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

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// statusByCode maps business codes to HTTP statuses so every handler
// answers the same way for the same failure.
var statusByCode = map[string]int{
	CodeProviderNotFound:  http.StatusNotFound,
	CodeServiceNotFound:   http.StatusNotFound,
	CodeBookingNotFound:   http.StatusNotFound,
	CodeServiceNotOffered: http.StatusUnprocessableEntity,
	CodePastOrInvalidDate: http.StatusBadRequest,
	CodeInvalidDateOrTime: http.StatusBadRequest,

	CodeSlotConflict:        http.StatusConflict,
	CodeScheduleLockTimeout: http.StatusConflict,
	CodeOutsideWorkingHours: http.StatusUnprocessableEntity,

	CodeAlreadyTerminal: http.StatusUnprocessableEntity,
	CodeNotOwner:        http.StatusForbidden,
	CodeTooCloseToStart: http.StatusUnprocessableEntity,
	CodeNotConfirmed:    http.StatusUnprocessableEntity,
	CodeStillFuture:     http.StatusUnprocessableEntity,
	CodeInvalidState:    http.StatusUnprocessableEntity,
}

// FromError writes a business error with its mapped status; anything else
// becomes a 500 without leaking internals.
func FromError(c *gin.Context, err error) {
	if code := BusinessCode(err); code != "" {
		status, ok := statusByCode[code]
		if !ok {
			status = http.StatusBadRequest
		}
		Write(c, status, code, code)
		return
	}
	Internal(c, "internal_error", "Unexpected error.")
}
