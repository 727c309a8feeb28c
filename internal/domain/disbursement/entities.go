package disbursement

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("disbursement not found")
	ErrInvalidState = errors.New("disbursement is not in PENDING status")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusDisbursed Status = "DISBURSED"
	StatusCancelled Status = "CANCELLED"
)

// ValidTenors is the fixed set of offered repayment durations in months.
var ValidTenors = []int{1, 3, 6, 9, 12, 15, 18, 21, 24}

func IsValidTenor(months int) bool {
	for _, t := range ValidTenors {
		if t == months {
			return true
		}
	}
	return false
}

// Disbursement is a single draw-down against an approved application's limit.
// Rows are created PENDING, resolved exactly once, never deleted.
type Disbursement struct {
	ID             uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	DisbursementID string `gorm:"column:disbursement_id;type:char(32);not null;uniqueIndex:ux_disbursements_disbursement_id" json:"disbursement_id"`
	ApplicationID  uint64 `gorm:"column:application_id;not null;index:idx_disbursements_application" json:"-"`

	Amount         float64 `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	InterestRate   float64 `gorm:"column:interest_rate;type:decimal(5,2);not null" json:"interest_rate"`
	TenorMonths    int     `gorm:"column:tenor_months;not null" json:"tenor_months"`
	InterestAmount float64 `gorm:"column:interest_amount;type:decimal(18,2);not null" json:"interest_amount"`
	TotalAmount    float64 `gorm:"column:total_amount;type:decimal(18,2);not null" json:"total_amount"`

	Status      Status     `gorm:"column:status;size:30;not null;default:'PENDING'" json:"status"`
	DisbursedBy string     `gorm:"column:disbursed_by;type:char(32)" json:"-"`
	DisbursedAt *time.Time `gorm:"column:disbursed_at" json:"disbursed_at,omitempty"`
	Note        string     `gorm:"column:note;size:255" json:"note,omitempty"`

	Latitude  *float64 `gorm:"column:request_latitude;type:decimal(10,7)" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"column:request_longitude;type:decimal(10,7)" json:"longitude,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"requested_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Disbursement) TableName() string { return "disbursements" }
