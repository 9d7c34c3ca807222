package bets

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"matka/cache"
	"matka/database"
	"matka/helpers"
	"matka/middlewares"
	"matka/panna"
	"matka/services"
)

const listCacheTTL = 30 * time.Second

type placeRequest struct {
	Number  string          `json:"number"`
	Amount  decimal.Decimal `json:"amount"`
	Bazar   string          `json:"bazar"`
	BetDate string          `json:"bet_date"`
	Notes   string          `json:"notes"`
}

type bulkRequest struct {
	BetType   string          `json:"bet_type"`
	Amount    decimal.Decimal `json:"amount"`
	Bazar     string          `json:"bazar"`
	BetDate   string          `json:"bet_date"`
	Number    string          `json:"number"`
	Columns   []int           `json:"columns"`
	JodiType  int             `json:"jodi_type"`
	PanelType int             `json:"panel_type"`
	Digits    string          `json:"digits"`
	Digit     *int            `json:"digit"`
	Notes     string          `json:"notes"`
}

type undoRequest struct {
	ActionID uint `json:"action_id"`
}

type deleteRequest struct {
	BetID uint `json:"bet_id"`
}

func parseBetDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

// Place records one direct bet on a literal number.
func Place(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req placeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_REQUEST_BODY")
	}
	date, err := parseBetDate(req.BetDate)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_BET_DATE")
	}

	bet, err := services.PlaceSingle(database.DB, services.PlaceSingleInput{
		UserID:  user.ID,
		Number:  req.Number,
		Amount:  req.Amount,
		Bazar:   req.Bazar,
		BetDate: date,
		Notes:   req.Notes,
	})
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	cache.InvalidateUser(c.Context(), user.ID)
	return helpers.JSONSuccess(c, "BET_PLACED", bet)
}

// PlaceBulk resolves a scheme and records the derived batch.
func PlaceBulk(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_REQUEST_BODY")
	}
	date, err := parseBetDate(req.BetDate)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_BET_DATE")
	}

	action, err := services.PlaceBulk(database.DB, services.PlaceBulkInput{
		UserID: user.ID,
		Scheme: req.BetType,
		Params: panna.Params{
			Number:    req.Number,
			Columns:   req.Columns,
			JodiType:  req.JodiType,
			PanelType: req.PanelType,
			Digits:    req.Digits,
			Digit:     req.Digit,
		},
		Amount:  req.Amount,
		Bazar:   req.Bazar,
		BetDate: date,
		Notes:   req.Notes,
	})
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	log.WithFields(log.Fields{
		"user_id":    user.ID,
		"action_id":  action.ID,
		"bet_type":   action.ActionType,
		"total_bets": action.TotalBets,
	}).Info("bulk action placed")

	cache.InvalidateUser(c.Context(), user.ID)
	return helpers.JSONSuccess(c, "BULK_ACTION_PLACED", action)
}

// Undo reverses one batch. With no action_id in the body the most recent
// active batch is undone.
func Undo(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req undoRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_REQUEST_BODY")
	}

	actionID := req.ActionID
	if actionID == 0 {
		last, err := services.LastActiveAction(database.DB, user.ID, "", time.Time{})
		if err != nil {
			return helpers.JSONServiceError(c, err)
		}
		if last == nil {
			return helpers.JSONError(c, fiber.StatusNotFound, "NO_ACTIVE_ACTION")
		}
		actionID = last.ID
	}

	action, err := services.UndoBulkAction(database.DB, user.ID, actionID)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	log.WithFields(log.Fields{"user_id": user.ID, "action_id": action.ID}).Info("bulk action undone")

	cache.InvalidateUser(c.Context(), user.ID)
	return helpers.JSONSuccess(c, "ACTION_UNDONE", action)
}

// LastAction reports the most recent batch that can still be undone,
// optionally narrowed to a bazar and date via query params.
func LastAction(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	date, err := parseBetDate(c.Query("date"))
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_DATE")
	}

	action, err := services.LastActiveAction(database.DB, user.ID, c.Query("bazar"), date)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}
	if action == nil {
		return helpers.JSONSuccess(c, "NO_ACTIVE_ACTION", nil)
	}
	return helpers.JSONSuccess(c, "OK", action)
}

// Delete removes one of the caller's own bets.
func Delete(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req deleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_REQUEST_BODY")
	}
	if req.BetID == 0 {
		return helpers.JSONError(c, fiber.StatusBadRequest, "BET_ID_REQUIRED")
	}

	if err := services.DeleteBet(database.DB, user.ID, req.BetID); err != nil {
		return helpers.JSONServiceError(c, err)
	}

	cache.InvalidateUser(c.Context(), user.ID)
	return helpers.JSONSuccess(c, "BET_DELETED", nil)
}

// List returns the caller's live book grouped by number and bazar.
func List(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	key := cache.UserKey(user.ID, "bets")

	var rows []services.GroupedBet
	if cache.GetJSON(c.Context(), key, &rows) {
		return helpers.JSONSuccess(c, "OK", rows)
	}

	rows, err := services.ListBetsGrouped(database.DB, user.ID)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	cache.SetJSON(c.Context(), key, rows, listCacheTTL)
	return helpers.JSONSuccess(c, "OK", rows)
}

// Summary aggregates the caller's live book.
func Summary(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	key := cache.UserKey(user.ID, "summary")

	var summary services.UserSummary
	if cache.GetJSON(c.Context(), key, &summary) {
		return helpers.JSONSuccess(c, "OK", summary)
	}

	s, err := services.Summarize(database.DB, user.ID)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	cache.SetJSON(c.Context(), key, s, listCacheTTL)
	return helpers.JSONSuccess(c, "OK", s)
}

// Total reports the caller's total live stake.
func Total(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	key := cache.UserKey(user.ID, "total")

	var total decimal.Decimal
	if cache.GetJSON(c.Context(), key, &total) {
		return helpers.JSONSuccess(c, "OK", fiber.Map{"total_amount": total})
	}

	s, err := services.Summarize(database.DB, user.ID)
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}

	cache.SetJSON(c.Context(), key, s.TotalAmount, listCacheTTL)
	return helpers.JSONSuccess(c, "OK", fiber.Map{"total_amount": s.TotalAmount})
}

// Actions lists the caller's batches, newest first.
func Actions(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	actions, err := services.ListActions(database.DB, user.ID, c.QueryInt("limit"))
	if err != nil {
		return helpers.JSONServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "OK", actions)
}

// Cancel is the administrative soft cancel: the bet disappears from the
// user's book but the row is kept for audit.
func Cancel(c *fiber.Ctx) error {
	admin := middlewares.CurrentUser(c)

	var req deleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_REQUEST_BODY")
	}
	if req.BetID == 0 {
		return helpers.JSONError(c, fiber.StatusBadRequest, "BET_ID_REQUIRED")
	}

	if err := services.SoftCancelBet(database.DB, req.BetID, admin.ID); err != nil {
		return helpers.JSONServiceError(c, err)
	}
	return helpers.JSONSuccess(c, "BET_CANCELLED", nil)
}
