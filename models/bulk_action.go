package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"matka/panna"
)

// Bulk action statuses.
const (
	BulkStatusActive        = "ACTIVE"
	BulkStatusUndone        = "UNDONE"
	BulkStatusPartialUndone = "PARTIAL_UNDONE"
	BulkStatusCompleted     = "COMPLETED"
)

// BulkBetAction groups the bets created by one scheme derivation so the whole
// batch can be reversed as a unit. TotalBets and TotalAmount are fixed at
// creation time; IsUndone only ever moves from false to true.
type BulkBetAction struct {
	gorm.Model

	UserID      uint            `gorm:"index;index:idx_bulk_user_bazar_date" json:"user_id"`
	ActionType  panna.BetType   `gorm:"size:20;index" json:"action_type"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2)" json:"amount"`
	TotalBets   int             `gorm:"default:0" json:"total_bets"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)" json:"total_amount"`

	Bazar      string    `gorm:"size:30;index:idx_bulk_user_bazar_date;default:SRIDEVI_OPEN" json:"bazar"`
	ActionDate time.Time `gorm:"type:date;index:idx_bulk_user_bazar_date" json:"action_date"`

	JodiColumn    *int           `gorm:"index" json:"jodi_column,omitempty"`
	JodiType      *int           `json:"jodi_type,omitempty"`
	ColumnsUsed   string         `gorm:"size:100" json:"columns_used,omitempty"`
	FamilyGroup   string         `gorm:"size:10;index" json:"family_group,omitempty"`
	FamilyNumbers datatypes.JSON `json:"family_numbers,omitempty"`
	InputData     string         `gorm:"size:100" json:"input_data,omitempty"`
	SearchDigit   *int           `json:"search_digit,omitempty"`

	RefID string `gorm:"size:36;uniqueIndex" json:"ref_id"`

	Status     string     `gorm:"size:20;index;default:ACTIVE" json:"status"`
	IsUndone   bool       `gorm:"index;default:false" json:"is_undone"`
	UndoneAt   *time.Time `json:"undone_at,omitempty"`
	UndoneByID *uint      `json:"-"`

	Notes string `gorm:"size:255" json:"-"`

	Bets []Bet `gorm:"foreignKey:BulkActionID;constraint:OnDelete:SET NULL"`
}

func (a *BulkBetAction) BeforeCreate(tx *gorm.DB) (err error) {
	if a.RefID == "" {
		a.RefID = strings.ToLower(uuid.New().String())
	}
	return nil
}
