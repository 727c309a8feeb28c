package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	appUC "loanly-backend/internal/usecase/application"
)

type ApplicationHandler struct{ uc *appUC.Usecase }

func NewApplicationHandler(uc *appUC.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type applyReq struct {
	PlafondID     uint64   `json:"plafond_id"     validate:"required"`
	NIK           string   `json:"nik"            validate:"omitempty,max=20"`
	BirthPlace    string   `json:"birth_place"    validate:"omitempty,max=100"`
	BirthDate     string   `json:"birth_date"     validate:"omitempty,datetime=2006-01-02"`
	MaritalStatus string   `json:"marital_status" validate:"omitempty,max=20"`
	Occupation    string   `json:"occupation"     validate:"omitempty,max=100"`
	MonthlyIncome float64  `json:"monthly_income" validate:"omitempty,gt=0,dec2"`
	Phone         string   `json:"phone"          validate:"omitempty,max=20"`
	NPWP          string   `json:"npwp"           validate:"omitempty,max=25"`
	BankName      string   `json:"bank_name"      validate:"omitempty,max=50"`
	AccountNumber string   `json:"account_number" validate:"omitempty,max=30"`
	Latitude      *float64 `json:"latitude"       validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude"      validate:"omitempty,gte=-180,lte=180"`
}

func (h *ApplicationHandler) Apply(c echo.Context) error {
	cid := customerID(c)
	if cid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderCustomerID})
	}
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	in := appUC.SubmitInput{
		CustomerID:    cid,
		PlafondID:     req.PlafondID,
		NIK:           req.NIK,
		BirthPlace:    req.BirthPlace,
		MaritalStatus: req.MaritalStatus,
		Occupation:    req.Occupation,
		MonthlyIncome: req.MonthlyIncome,
		Phone:         req.Phone,
		NPWP:          req.NPWP,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}
	if req.BirthDate != "" {
		bd, _ := time.Parse("2006-01-02", req.BirthDate)
		in.BirthDate = &bd
	}

	dto, err := h.uc.Submit(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type decisionReq struct {
	Approved      *bool    `json:"approved"       validate:"required"`
	ApprovedLimit *float64 `json:"approved_limit" validate:"omitempty,gt=0,dec2"`
	Note          string   `json:"note"           validate:"omitempty,max=255"`
}

func (h *ApplicationHandler) bindDecision(c echo.Context) (*appUC.DecisionInput, error) {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return nil, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	aid := actorID(c)
	if aid == "" {
		return nil, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderActorID})
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return nil, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	return &appUC.DecisionInput{
		ActorID:       aid,
		ApplicationID: applicationID,
		Approved:      *req.Approved,
		ApprovedLimit: req.ApprovedLimit,
		Note:          req.Note,
	}, nil
}

func (h *ApplicationHandler) Review(c echo.Context) error {
	in, err := h.bindDecision(c)
	if err != nil || in == nil {
		return err
	}
	dto, err := h.uc.Review(c.Request().Context(), *in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Approve(c echo.Context) error {
	in, err := h.bindDecision(c)
	if err != nil || in == nil {
		return err
	}
	dto, err := h.uc.Approve(c.Request().Context(), *in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) MyApplications(c echo.Context) error {
	cid := customerID(c)
	if cid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderCustomerID})
	}
	dtos, err := h.uc.MyApplications(c.Request().Context(), cid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ApplicationHandler) MyApprovedApplications(c echo.Context) error {
	cid := customerID(c)
	if cid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderCustomerID})
	}
	dtos, err := h.uc.MyApprovedApplications(c.Request().Context(), cid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ApplicationHandler) PendingReviewQueue(c echo.Context) error {
	dtos, err := h.uc.PendingReviewQueue(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ApplicationHandler) WaitingApprovalQueue(c echo.Context) error {
	dtos, err := h.uc.WaitingApprovalQueue(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ApplicationHandler) History(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	dtos, err := h.uc.History(c.Request().Context(), applicationID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
