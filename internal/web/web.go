package web

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs"
	"github.com/sidereusnuntius/namecard/internal/config"
	"github.com/sidereusnuntius/namecard/internal/service"
	"github.com/sidereusnuntius/namecard/internal/storage"
)

const (
	SessionRoute = "/session"
	PublishRoute = "/publish"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}

// statusFor maps the failure taxonomy onto HTTP statuses. Submitters get
// the specific reason; resolution failures all collapse into a generic 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidHandle),
		errors.Is(err, service.ErrValidation),
		errors.Is(err, storage.ErrEmpty):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrHandleTaken),
		errors.Is(err, service.ErrAlreadyClaimed):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
