package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minatgo/minatgo/internal/admin"
	"github.com/minatgo/minatgo/internal/auth"
	"github.com/minatgo/minatgo/internal/questions"
	"github.com/minatgo/minatgo/internal/quiz"
	"github.com/minatgo/minatgo/internal/store"
)

var errBadRequest = errors.New("bad request")

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, admin.ErrValidation),
		errors.Is(err, quiz.ErrOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, quiz.ErrIncomplete):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrNotConfigured),
		errors.Is(err, questions.ErrEmptyBank):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// fail writes err as a JSON error. Internal errors are logged and their
// detail is withheld from the client.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	abort(c, status, msg)
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
