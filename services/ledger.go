package services

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"matka/models"
	"matka/panna"
)

// PlaceBulkInput carries one scheme derivation request. Amount is the stake
// per derived number, not the batch total.
type PlaceBulkInput struct {
	UserID  uint
	Scheme  string
	Params  panna.Params
	Amount  decimal.Decimal
	Bazar   string
	BetDate time.Time
	Notes   string
}

// PlaceSingleInput carries one direct wager.
type PlaceSingleInput struct {
	UserID  uint
	Number  string
	Amount  decimal.Decimal
	Bazar   string
	BetDate time.Time
	Notes   string
}

// normalizeDate strips the time of day so two timestamps on the same day
// compare equal in a date column regardless of driver.
func normalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateStake(amount decimal.Decimal, bazar string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return invalidf("amount must be positive, got %s", amount.String())
	}
	if !models.ValidBazar(bazar) {
		return invalidf("unknown bazar %q", bazar)
	}
	return nil
}

// PlaceBulk resolves a scheme into its numbers and records the whole batch,
// ledger row plus one bet per number, in a single transaction. Either every
// row lands or none do.
func PlaceBulk(db *gorm.DB, in PlaceBulkInput) (*models.BulkBetAction, error) {
	if err := validateStake(in.Amount, in.Bazar); err != nil {
		return nil, err
	}

	resolver, err := panna.NewResolver(panna.BetType(in.Scheme), in.Params)
	if err != nil {
		return nil, err
	}
	picks, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}
	if len(picks) == 0 {
		return nil, invalidf("scheme %s resolved to no numbers", in.Scheme)
	}

	action := buildAction(in, resolver.Scheme(), picks)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(action).Error; err != nil {
			return err
		}
		bets := make([]models.Bet, len(picks))
		for i, p := range picks {
			bets[i] = models.Bet{
				UserID:       in.UserID,
				Number:       p.Number,
				Amount:       in.Amount,
				Bazar:        in.Bazar,
				BetDate:      action.ActionDate,
				BulkActionID: &action.ID,
				BetType:      action.ActionType,
				SubType:      p.SubType,
				FamilyGroup:  p.Family,
				InputDigits:  in.Params.Digits,
				SearchDigit:  action.SearchDigit,
				Status:       models.BetStatusActive,
				Notes:        in.Notes,
			}
			if p.Column > 0 {
				col := p.Column
				bets[i].ColumnNumber = &col
			}
		}
		if err := tx.CreateInBatches(bets, 200).Error; err != nil {
			return err
		}
		action.Bets = bets
		return nil
	})
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return action, nil
}

// buildAction fills the ledger row's descriptor fields from the request and
// the resolved picks so the batch can be displayed and audited without
// re-resolving the scheme.
func buildAction(in PlaceBulkInput, scheme panna.BetType, picks []panna.Pick) *models.BulkBetAction {
	action := &models.BulkBetAction{
		UserID:      in.UserID,
		ActionType:  scheme,
		Amount:      in.Amount,
		TotalBets:   len(picks),
		TotalAmount: in.Amount.Mul(decimal.NewFromInt(int64(len(picks)))),
		Bazar:       in.Bazar,
		ActionDate:  normalizeDate(in.BetDate),
		Status:      models.BulkStatusActive,
		Notes:       in.Notes,
	}

	if cols := distinctColumns(picks); len(cols) > 0 {
		action.ColumnsUsed = joinInts(cols)
		first := cols[0]
		action.JodiColumn = &first
	}

	switch scheme {
	case panna.BetJodi:
		jt := in.Params.JodiType
		action.JodiType = &jt
	case panna.BetJodiPanel:
		pt := in.Params.PanelType
		action.JodiType = &pt
	case panna.BetMotar:
		action.InputData = in.Params.Digits
	case panna.BetCommonPana36, panna.BetCommonPana56:
		if in.Params.Digit != nil {
			d := *in.Params.Digit
			action.SearchDigit = &d
		}
	case panna.BetSetPana:
		action.InputData = in.Params.Number
		if len(picks) > 0 {
			action.FamilyGroup = picks[0].Family
		}
		numbers := make([]string, len(picks))
		for i, p := range picks {
			numbers[i] = p.Number
		}
		if raw, err := json.Marshal(numbers); err == nil {
			action.FamilyNumbers = raw
		}
	}
	return action
}

func distinctColumns(picks []panna.Pick) []int {
	seen := map[int]bool{}
	var cols []int
	for _, p := range picks {
		if p.Column > 0 && !seen[p.Column] {
			seen[p.Column] = true
			cols = append(cols, p.Column)
		}
	}
	sort.Ints(cols)
	return cols
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

// UndoBulkAction removes every bet of one batch and marks the ledger row
// undone. The flag only moves from false to true; a second undo of the same
// action reports ErrAlreadyUndone. The update is guarded on is_undone so two
// concurrent undos cannot both win.
func UndoBulkAction(db *gorm.DB, userID, actionID uint) (*models.BulkBetAction, error) {
	var action models.BulkBetAction
	err := db.Where("id = ? AND user_id = ?", actionID, userID).First(&action).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	if action.IsUndone {
		return nil, ErrAlreadyUndone
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Hard delete, not soft: undone bets must vanish from every query.
		if err := tx.Unscoped().
			Where("bulk_action_id = ?", action.ID).
			Delete(&models.Bet{}).Error; err != nil {
			return err
		}
		now := time.Now()
		res := tx.Model(&models.BulkBetAction{}).
			Where("id = ? AND is_undone = ?", action.ID, false).
			Updates(map[string]any{
				"is_undone":    true,
				"undone_at":    now,
				"undone_by_id": userID,
				"status":       models.BulkStatusUndone,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyUndone
		}
		action.IsUndone = true
		action.UndoneAt = &now
		action.UndoneByID = &userID
		action.Status = models.BulkStatusUndone
		return nil
	})
	if errors.Is(err, ErrAlreadyUndone) {
		return nil, ErrAlreadyUndone
	}
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return &action, nil
}

// LastActiveAction returns the user's most recent batch that can still be
// undone, or nil when there is none. No action is not an error here. A
// non-empty bazar or a non-zero date narrows the search to that market window
// or day.
func LastActiveAction(db *gorm.DB, userID uint, bazar string, date time.Time) (*models.BulkBetAction, error) {
	q := db.Where("user_id = ? AND is_undone = ?", userID, false)
	if bazar != "" {
		q = q.Where("bazar = ?", bazar)
	}
	if !date.IsZero() {
		q = q.Where("action_date = ?", normalizeDate(date))
	}
	// id breaks created_at ties between batches placed within one clock tick.
	var action models.BulkBetAction
	err := q.Order("created_at DESC").Order("id DESC").First(&action).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return &action, nil
}

// ListActions returns a user's batches, newest first.
func ListActions(db *gorm.DB, userID uint, limit int) ([]models.BulkBetAction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var actions []models.BulkBetAction
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&actions).Error
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return actions, nil
}

// PlaceSingle records one direct wager outside any batch.
func PlaceSingle(db *gorm.DB, in PlaceSingleInput) (*models.Bet, error) {
	if err := validateStake(in.Amount, in.Bazar); err != nil {
		return nil, err
	}
	number := strings.TrimSpace(in.Number)
	if !panna.IsPana(number) {
		return nil, invalidf("number must be exactly 3 digits, got %q", in.Number)
	}

	bet := &models.Bet{
		UserID:  in.UserID,
		Number:  number,
		Amount:  in.Amount,
		Bazar:   in.Bazar,
		BetDate: normalizeDate(in.BetDate),
		BetType: panna.BetSingle,
		Status:  models.BetStatusActive,
		Notes:   in.Notes,
	}
	if g, ok := panna.FindFamilyGroup(number); ok {
		bet.FamilyGroup = g.Name
	}
	if err := db.Create(bet).Error; err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return bet, nil
}

// DeleteBet removes one of the caller's own bets permanently.
func DeleteBet(db *gorm.DB, userID, betID uint) error {
	res := db.Unscoped().
		Where("id = ? AND user_id = ?", betID, userID).
		Delete(&models.Bet{})
	if res.Error != nil {
		return &PersistenceError{Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftCancelBet hides a bet administratively without destroying the row.
// The bet keeps its ledger linkage and can be inspected through unscoped
// queries.
func SoftCancelBet(db *gorm.DB, betID, cancelledBy uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Bet{}).
			Where("id = ?", betID).
			Updates(map[string]any{
				"status":        models.BetStatusCancelled,
				"deleted_by_id": cancelledBy,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ?", betID).Delete(&models.Bet{}).Error
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// UserSummary aggregates a user's live book.
type UserSummary struct {
	TotalBets       int64           `json:"total_bets"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DistinctNumbers int64           `json:"distinct_numbers"`
}

// Summarize computes the user's live bet counts and stake total.
func Summarize(db *gorm.DB, userID uint) (*UserSummary, error) {
	var s UserSummary
	err := db.Model(&models.Bet{}).Where("user_id = ?", userID).Count(&s.TotalBets).Error
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	s.TotalAmount, err = models.SumBetAmountByUser(db, userID)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	s.DistinctNumbers, err = models.CountDistinctNumbersByUser(db, userID)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return &s, nil
}

// GroupedBet is one line of the per-number view: the same number wagered
// several times shows once with the stakes summed.
type GroupedBet struct {
	Number      string          `json:"number"`
	Bazar       string          `json:"bazar"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int64           `json:"count"`
}

// ListBetsGrouped returns the user's live book grouped by number and bazar.
func ListBetsGrouped(db *gorm.DB, userID uint) ([]GroupedBet, error) {
	var rows []GroupedBet
	err := db.Model(&models.Bet{}).
		Where("user_id = ?", userID).
		Select("number, bazar, COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS count").
		Group("number").
		Group("bazar").
		Order("number").
		Find(&rows).Error
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return rows, nil
}
