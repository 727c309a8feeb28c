package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notification not found")

type Type string

const (
	TypeLoanSubmitted Type = "LOAN_SUBMITTED"
	TypeLoanReviewed  Type = "LOAN_REVIEWED"
	TypeLoanApproved  Type = "LOAN_APPROVED"
	TypeLoanRejected  Type = "LOAN_REJECTED"
	TypeLoanDisbursed Type = "LOAN_DISBURSED"
)

// Notification is an in-app message for a customer. Delivery is best-effort;
// the credit core never depends on a notification row existing.
type Notification struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      string     `gorm:"column:user_id;type:char(32);not null;index:idx_notifications_user" json:"user_id"`
	Title       string     `gorm:"column:title;size:100;not null" json:"title"`
	Message     string     `gorm:"column:message;size:500;not null" json:"message"`
	Type        Type       `gorm:"column:notification_type;size:30;not null" json:"type"`
	ReferenceID string     `gorm:"column:reference_id;type:char(32)" json:"reference_id,omitempty"`
	IsRead      bool       `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ReadAt      *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
}

func (Notification) TableName() string { return "notifications" }
