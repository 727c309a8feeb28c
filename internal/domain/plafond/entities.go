package plafond

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("plafond not found")
	ErrTenorNotOffered = errors.New("tenor not offered for this tier")
)

// Plafond is a credit-tier catalog entry. The catalog is read-only from the
// credit core's point of view; tier administration lives elsewhere.
type Plafond struct {
	ID          uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"column:name;size:100;not null" json:"name"`
	Description string         `gorm:"column:description;size:255" json:"description"`
	MaxAmount   float64        `gorm:"column:max_amount;type:decimal(18,2);not null" json:"max_amount"`
	IsActive    bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Plafond) TableName() string { return "plafonds" }

// TenorRate is the monthly interest rate offered for a (tier, tenor) pair.
type TenorRate struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PlafondID    uint64    `gorm:"column:plafond_id;not null;index:idx_tenor_rates_plafond_tenor" json:"plafond_id"`
	TenorMonths  int       `gorm:"column:tenor_months;not null;index:idx_tenor_rates_plafond_tenor" json:"tenor_months"`
	InterestRate float64   `gorm:"column:interest_rate;type:decimal(5,2);not null" json:"interest_rate"`
	Description  string    `gorm:"column:description;size:100" json:"description"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TenorRate) TableName() string { return "tenor_rates" }
