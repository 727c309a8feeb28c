package disbursement

import (
	"time"
)

type RequestInput struct {
	CustomerID    string
	ApplicationID string
	Amount        float64
	TenorMonths   int

	Latitude  *float64
	Longitude *float64
}

type DisbursementDTO struct {
	DisbursementID string     `json:"disbursement_id"`
	ApplicationID  string     `json:"application_id"`
	PlafondName    string     `json:"plafond_name,omitempty"`
	BankName       string     `json:"bank_name,omitempty"`
	AccountNumber  string     `json:"account_number,omitempty"`
	Amount         float64    `json:"amount"`
	InterestRate   float64    `json:"interest_rate"`
	TenorMonths    int        `json:"tenor_months"`
	InterestAmount float64    `json:"interest_amount"`
	TotalAmount    float64    `json:"total_amount"`
	Status         string     `json:"status"`
	Note           string     `json:"note,omitempty"`
	RequestedAt    time.Time  `json:"requested_at"`
	DisbursedAt    *time.Time `json:"disbursed_at,omitempty"`
}
