package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	appDomain "loanly-backend/internal/domain/application"
	disbDomain "loanly-backend/internal/domain/disbursement"
	notifDomain "loanly-backend/internal/domain/notification"
	plafondDomain "loanly-backend/internal/domain/plafond"
	"loanly-backend/internal/domain/uow"
	appUC "loanly-backend/internal/usecase/application"
	disbUC "loanly-backend/internal/usecase/disbursement"
	"loanly-backend/internal/usecase/eligibility"
)

// Identity headers, populated by the auth edge in front of this service.
const (
	HeaderCustomerID = "Ax-Customer-Id"
	HeaderActorID    = "Ax-Actor-Id"
	HeaderActorRole  = "Ax-Actor-Role"
)

func customerID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(HeaderCustomerID))
}

func actorID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(HeaderActorID))
}

// writeError maps domain failures onto HTTP statuses. Every business-rule
// violation is a synchronous, typed error; only lock contention is retried
// (inside the uow) before surfacing here.
func writeError(c echo.Context, err error) error {
	var inel *eligibility.IneligibleError
	switch {
	case errors.As(err, &inel):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: inel.Reason, ReasonCode: inel.ReasonCode})
	case errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, disbDomain.ErrNotFound),
		errors.Is(err, plafondDomain.ErrNotFound),
		errors.Is(err, notifDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrNotOwned):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrInvalidState),
		errors.Is(err, disbDomain.ErrInvalidState),
		errors.Is(err, appDomain.ErrDuplicateActive),
		errors.Is(err, appDomain.ErrInsufficientLimit):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appUC.ErrValidation),
		errors.Is(err, disbUC.ErrValidation),
		errors.Is(err, plafondDomain.ErrTenorNotOffered):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, uow.ErrConcurrency):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
