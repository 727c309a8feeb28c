package eligibility

import (
	"time"
)

const (
	ReasonPendingApplication = "PENDING_APPLICATION"
	ReasonActiveLimitExists  = "ACTIVE_LIMIT_EXISTS"
	ReasonNoHigherTier       = "NO_HIGHER_TIER"
	ReasonEligible           = "ELIGIBLE"
)

// IneligibleError is the gate's rejection, carrying the machine-readable
// reason code alongside the human message.
type IneligibleError struct {
	ReasonCode string
	Reason     string
}

func (e *IneligibleError) Error() string { return e.Reason }

type PlafondInfo struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MaxAmount   float64   `json:"max_amount"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type ActiveLimitInfo struct {
	ApplicationID  string  `json:"application_id"`
	PlafondID      uint64  `json:"plafond_id"`
	PlafondName    string  `json:"plafond_name"`
	MaxAmount      float64 `json:"max_amount"`
	ApprovedLimit  float64 `json:"approved_limit"`
	UsedAmount     float64 `json:"used_amount"`
	AvailableLimit float64 `json:"available_limit"`
}

type Result struct {
	CanApply         bool             `json:"can_apply"`
	Reason           string           `json:"reason"`
	ReasonCode       string           `json:"reason_code"`
	CurrentLimit     *ActiveLimitInfo `json:"current_limit,omitempty"`
	MinimumNextTier  *PlafondInfo     `json:"minimum_next_tier,omitempty"`
	EligiblePlafonds []PlafondInfo    `json:"eligible_plafonds"`
}
