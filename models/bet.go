package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"matka/panna"
)

// Bazar tags for the fixed market windows.
const (
	BazarSrideviOpen      = "SRIDEVI_OPEN"
	BazarSrideviClosed    = "SRIDEVI_CLOSED"
	BazarTimeOpen         = "TIME_OPEN"
	BazarTimeClosed       = "TIME_CLOSED"
	BazarDivasMilanOpen   = "DIVAS_MILAN_OPEN"
	BazarDivasMilanClosed = "DIVAS_MILAN_CLOSED"
	BazarKalyanOpen       = "KALYAN_OPEN"
	BazarKalyanClosed     = "KALYAN_CLOSED"
	BazarNightMilanOpen   = "NIGHT_MILAN_OPEN"
	BazarNightMilanClosed = "NIGHT_MILAN_CLOSED"
)

var bazars = map[string]bool{
	BazarSrideviOpen:      true,
	BazarSrideviClosed:    true,
	BazarTimeOpen:         true,
	BazarTimeClosed:       true,
	BazarDivasMilanOpen:   true,
	BazarDivasMilanClosed: true,
	BazarKalyanOpen:       true,
	BazarKalyanClosed:     true,
	BazarNightMilanOpen:   true,
	BazarNightMilanClosed: true,
}

// ValidBazar reports whether tag names a known market window.
func ValidBazar(tag string) bool {
	return bazars[tag]
}

// Bet statuses.
const (
	BetStatusActive    = "ACTIVE"
	BetStatusWon       = "WON"
	BetStatusLost      = "LOST"
	BetStatusCancelled = "CANCELLED"
	BetStatusPending   = "PENDING"
)

// Bet is a single wager on one 3-digit number. DeletedAt is the
// administrative soft-delete axis; an undone bulk action removes its bets for
// good through the unscoped delete path instead.
type Bet struct {
	gorm.Model

	UserID uint            `gorm:"index;index:idx_bets_user_bazar_date" json:"user_id"`
	Number string          `gorm:"size:10;index" json:"number"`
	Amount decimal.Decimal `gorm:"type:numeric(10,2)" json:"amount"`

	Bazar   string    `gorm:"size:30;index:idx_bets_user_bazar_date;default:SRIDEVI_OPEN" json:"bazar"`
	BetDate time.Time `gorm:"type:date;index:idx_bets_user_bazar_date" json:"bet_date"`

	BulkActionID *uint `gorm:"index" json:"bulk_action_id"`

	BetType      panna.BetType `gorm:"size:20;index;default:SINGLE" json:"bet_type"`
	ColumnNumber *int          `gorm:"index" json:"column_number,omitempty"`
	SubType      string        `gorm:"size:20" json:"sub_type,omitempty"`
	FamilyGroup  string        `gorm:"size:10;index" json:"family_group,omitempty"`
	InputDigits  string        `gorm:"size:20" json:"input_digits,omitempty"`
	SearchDigit  *int          `json:"search_digit,omitempty"`

	Status string `gorm:"size:20;index;default:ACTIVE" json:"status"`
	Notes  string `gorm:"size:255" json:"-"`

	DeletedByID *uint `json:"-"`
}

// CountBetsByBulkAction counts the live bets attached to one bulk action.
func CountBetsByBulkAction(db *gorm.DB, bulkActionID uint) (int64, error) {
	var n int64
	err := db.Model(&Bet{}).Where("bulk_action_id = ?", bulkActionID).Count(&n).Error
	return n, err
}

// GetBetsByUser returns a user's live bets, newest first.
func GetBetsByUser(db *gorm.DB, userID uint) ([]Bet, error) {
	var bets []Bet
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bets).Error
	if err != nil {
		return nil, err
	}
	return bets, nil
}

// SumBetAmountByUser totals a user's live bet amounts.
func SumBetAmountByUser(db *gorm.DB, userID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.Model(&Bet{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// CountDistinctNumbersByUser counts how many different numbers a user has
// live bets on.
func CountDistinctNumbersByUser(db *gorm.DB, userID uint) (int64, error) {
	var n int64
	err := db.Model(&Bet{}).
		Where("user_id = ?", userID).
		Distinct("number").
		Count(&n).Error
	return n, err
}
