package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	disbUC "loanly-backend/internal/usecase/disbursement"
)

type DisbursementHandler struct{ uc *disbUC.Usecase }

func NewDisbursementHandler(uc *disbUC.Usecase) *DisbursementHandler {
	return &DisbursementHandler{uc: uc}
}

type disburseReq struct {
	ApplicationID string   `json:"application_id" validate:"required,hex32"`
	Amount        float64  `json:"amount"         validate:"required,gt=0,dec2"`
	TenorMonths   int      `json:"tenor_months"   validate:"required,tenor"`
	Latitude      *float64 `json:"latitude"       validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude"      validate:"omitempty,gte=-180,lte=180"`
}

func (h *DisbursementHandler) Request(c echo.Context) error {
	cid := customerID(c)
	if cid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderCustomerID})
	}
	var req disburseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Request(c.Request().Context(), disbUC.RequestInput{
		CustomerID:    cid,
		ApplicationID: req.ApplicationID,
		Amount:        req.Amount,
		TenorMonths:   req.TenorMonths,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type resolveDisbursementReq struct {
	Note string `json:"note" validate:"omitempty,max=255"`
}

type cancelDisbursementReq struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

func (h *DisbursementHandler) Process(c echo.Context) error {
	disbursementID := c.Param("disbursement_id")
	if !reHex32.MatchString(disbursementID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid disbursement_id path param"})
	}
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderActorID})
	}
	var req resolveDisbursementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Process(c.Request().Context(), aid, disbursementID, req.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DisbursementHandler) Cancel(c echo.Context) error {
	disbursementID := c.Param("disbursement_id")
	if !reHex32.MatchString(disbursementID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid disbursement_id path param"})
	}
	aid := actorID(c)
	if aid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderActorID})
	}
	var req cancelDisbursementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Cancel(c.Request().Context(), aid, disbursementID, req.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DisbursementHandler) MyDisbursements(c echo.Context) error {
	cid := customerID(c)
	if cid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderCustomerID})
	}
	dtos, err := h.uc.MyDisbursements(c.Request().Context(), cid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *DisbursementHandler) PendingQueue(c echo.Context) error {
	dtos, err := h.uc.PendingQueue(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *DisbursementHandler) All(c echo.Context) error {
	dtos, err := h.uc.All(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
