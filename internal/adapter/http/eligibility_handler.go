package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanly-backend/internal/usecase/eligibility"
)

type EligibilityHandler struct{ uc *eligibility.Usecase }

func NewEligibilityHandler(uc *eligibility.Usecase) *EligibilityHandler {
	return &EligibilityHandler{uc: uc}
}

// CheckEligibility is informational: an ineligible result is a 200 with
// can_apply=false, not an error. The gate only hard-fails on submission.
func (h *EligibilityHandler) CheckEligibility(c echo.Context) error {
	cid := customerID(c)
	if cid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderCustomerID})
	}
	res, err := h.uc.Check(c.Request().Context(), cid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
