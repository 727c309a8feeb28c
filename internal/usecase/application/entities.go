package application

import (
	"time"
)

type SubmitInput struct {
	CustomerID string
	PlafondID  uint64

	NIK           string
	BirthPlace    string
	BirthDate     *time.Time
	MaritalStatus string
	Occupation    string
	MonthlyIncome float64
	Phone         string
	NPWP          string
	BankName      string
	AccountNumber string

	Latitude  *float64
	Longitude *float64
}

// DecisionInput covers both staff stages; ApprovedLimit is only honored by
// the branch-manager stage and required there on approval.
type DecisionInput struct {
	ActorID       string
	ApplicationID string
	Approved      bool
	ApprovedLimit *float64
	Note          string
}

type ApplicationDTO struct {
	ApplicationID  string     `json:"application_id"`
	CustomerID     string     `json:"customer_id"`
	PlafondID      uint64     `json:"plafond_id"`
	PlafondName    string     `json:"plafond_name"`
	MaxAmount      float64    `json:"max_amount"`
	Status         string     `json:"status"`
	ApprovedLimit  float64    `json:"approved_limit"`
	UsedAmount     float64    `json:"used_amount"`
	AvailableLimit float64    `json:"available_limit"`
	RejectionNote  string     `json:"rejection_note,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type HistoryDTO struct {
	PreviousStatus *string   `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ActorID        string    `json:"actor_id"`
	ActorRole      string    `json:"actor_role"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
