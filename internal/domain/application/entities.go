package application

import (
	"errors"
	"fmt"
	"time"

	"loanly-backend/internal/domain/plafond"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrInvalidState      = errors.New("operation not allowed in current application status")
	ErrDuplicateActive   = errors.New("customer already has an active application for this plafond")
	ErrInsufficientLimit = errors.New("insufficient available limit")
	ErrNotOwned          = errors.New("application does not belong to this customer")
)

type Status string

const (
	// Waiting for marketing review
	StatusPendingReview Status = "PENDING_REVIEW"
	// Marketing passed it on, waiting for branch manager
	StatusWaitingApproval Status = "WAITING_APPROVAL"
	// Fully approved, limit may be drawn against
	StatusApproved Status = "APPROVED"
	// Rejected at either stage
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether no further workflow transition may leave s.
// APPROVED is terminal for the workflow even though the ledger keeps moving.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Role string

const (
	RoleCustomer      Role = "CUSTOMER"
	RoleMarketing     Role = "MARKETING"
	RoleBranchManager Role = "BRANCH_MANAGER"
	RoleBackOffice    Role = "BACK_OFFICE"
)

// Stage describes one staff decision point of the approval workflow: which
// status it consumes, who may act, and where approve/reject land.
type Stage struct {
	Name      string
	From      Status
	Role      Role
	ApproveTo Status
	RejectTo  Status
}

var (
	StageReview  = Stage{Name: "review", From: StatusPendingReview, Role: RoleMarketing, ApproveTo: StatusWaitingApproval, RejectTo: StatusRejected}
	StageApprove = Stage{Name: "approve", From: StatusWaitingApproval, Role: RoleBranchManager, ApproveTo: StatusApproved, RejectTo: StatusRejected}
)

// Application is one customer's attempt at one plafond tier. It carries the
// approval-workflow state and, once approved, the credit-limit ledger
// (approved_limit / used_amount). Rows are never deleted.
type Application struct {
	ID            uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ApplicationID string `gorm:"column:application_id;type:char(32);not null;uniqueIndex:ux_applications_application_id" json:"application_id"`
	CustomerID    string `gorm:"column:customer_id;type:char(32);not null;index:idx_applications_customer" json:"customer_id"`
	PlafondID     uint64 `gorm:"column:plafond_id;not null;index:idx_applications_plafond" json:"plafond_id"`

	Plafond plafond.Plafond `gorm:"foreignKey:PlafondID" json:"plafond"`

	Status        Status  `gorm:"column:status;size:30;not null;default:'PENDING_REVIEW'" json:"status"`
	ApprovedLimit float64 `gorm:"column:approved_limit;type:decimal(18,2);not null;default:0" json:"approved_limit"`
	UsedAmount    float64 `gorm:"column:used_amount;type:decimal(18,2);not null;default:0" json:"used_amount"`

	// ActiveKey is "customer_id:plafond_id" while the application is Active,
	// NULL otherwise. The unique index makes the one-active-application-per-
	// plafond rule hold at the storage level even when two submissions race
	// past the in-transaction existence checks. Maintained by the repository
	// on every write.
	ActiveKey *string `gorm:"column:active_key;size:64;uniqueIndex:ux_applications_active_key" json:"-"`

	ReviewedBy    string     `gorm:"column:reviewed_by;type:char(32)" json:"-"`
	ApprovedBy    string     `gorm:"column:approved_by;type:char(32)" json:"-"`
	ReviewedAt    *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ApprovedAt    *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	RejectionNote string     `gorm:"column:rejection_note;size:255" json:"rejection_note,omitempty"`

	// Applicant details captured at submission
	NIK           string     `gorm:"column:nik;size:20" json:"nik,omitempty"`
	BirthPlace    string     `gorm:"column:birth_place;size:100" json:"birth_place,omitempty"`
	BirthDate     *time.Time `gorm:"column:birth_date;type:date" json:"birth_date,omitempty"`
	MaritalStatus string     `gorm:"column:marital_status;size:20" json:"marital_status,omitempty"`
	Occupation    string     `gorm:"column:occupation;size:100" json:"occupation,omitempty"`
	MonthlyIncome float64    `gorm:"column:monthly_income;type:decimal(18,2)" json:"monthly_income,omitempty"`
	Phone         string     `gorm:"column:phone;size:20" json:"phone,omitempty"`
	NPWP          string     `gorm:"column:npwp;size:25" json:"npwp,omitempty"`
	BankName      string     `gorm:"column:bank_name;size:50" json:"bank_name,omitempty"`
	AccountNumber string     `gorm:"column:account_number;size:30" json:"account_number,omitempty"`

	Latitude  *float64 `gorm:"column:application_latitude;type:decimal(10,7)" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"column:application_longitude;type:decimal(10,7)" json:"longitude,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

// AvailableLimit is approved_limit - used_amount, never negative.
func (a *Application) AvailableLimit() float64 {
	avail := a.ApprovedLimit - a.UsedAmount
	if avail < 0 {
		return 0
	}
	return avail
}

// CanDisburse reports whether amount fits in the remaining limit.
func (a *Application) CanDisburse(amount float64) bool {
	return a.Status == StatusApproved && a.AvailableLimit() >= amount
}

// Reserve consumes amount from the available limit. The caller must hold the
// application row lock; this only mutates the in-memory aggregate.
func (a *Application) Reserve(amount float64) error {
	if a.Status != StatusApproved {
		return ErrInvalidState
	}
	if amount <= 0 {
		return fmt.Errorf("reserve amount must be positive, got %.2f", amount)
	}
	if a.AvailableLimit() < amount {
		return ErrInsufficientLimit
	}
	a.UsedAmount += amount
	return nil
}

// Release returns amount to the available limit, flooring used_amount at zero.
func (a *Application) Release(amount float64) {
	a.UsedAmount -= amount
	if a.UsedAmount < 0 {
		a.UsedAmount = 0
	}
}

// Active means the application still blocks a new one for the same tier:
// either the workflow has not finished, or the approved limit still has room.
func (a *Application) Active() bool {
	if !a.Status.Terminal() {
		return true
	}
	return a.Status == StatusApproved && a.AvailableLimit() > 0
}

// ApplicationHistory is one immutable audit row per status transition.
// PreviousStatus is nil for the submission row.
type ApplicationHistory struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ApplicationID  uint64    `gorm:"column:application_id;not null;index:idx_application_histories_application" json:"-"`
	PreviousStatus *Status   `gorm:"column:previous_status;size:30" json:"previous_status,omitempty"`
	NewStatus      Status    `gorm:"column:new_status;size:30;not null" json:"new_status"`
	ActorID        string    `gorm:"column:actor_id;type:char(32);not null" json:"actor_id"`
	ActorRole      Role      `gorm:"column:actor_role;size:50;not null" json:"actor_role"`
	Note           string    `gorm:"column:note;size:255" json:"note,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ApplicationHistory) TableName() string { return "application_histories" }
