package bets_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"matka/database"
	"matka/models"
	"matka/routes"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "api.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.BulkBetAction{},
		&models.Bet{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	app := fiber.New()
	routes.Setup(app)
	return app
}

func createUser(t *testing.T, username, password string, admin bool) *models.User {
	t.Helper()
	u := &models.User{
		Username: username,
		Email:    username + "@example.com",
		IsAdmin:  admin,
		IsActive: true,
	}
	require.NoError(t, u.SetPassword(password))
	require.NoError(t, database.DB.Create(u).Error)
	return u
}

func openSession(t *testing.T, user *models.User) string {
	t.Helper()
	s := models.Session{UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, database.DB.Create(&s).Error)
	return s.SID
}

func doJSON(t *testing.T, app *fiber.App, method, path, sid string, body any) (*http.Response, apiResponse) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.Header.Set("X-Session-ID", sid)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestLoginAndSessionGate(t *testing.T) {
	app := setupApp(t)
	createUser(t, "player1", "secret", false)

	// No session header.
	resp, _ := doJSON(t, app, http.MethodGet, "/bets/summary", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Bad password.
	resp, _ = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"login": "player1", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Good login by username.
	resp, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"login": "player1", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &login))
	require.NotEmpty(t, login.SessionID)

	resp, _ = doJSON(t, app, http.MethodGet, "/bets/summary", login.SessionID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Logout invalidates the session.
	resp, _ = doJSON(t, app, http.MethodPost, "/auth/logout", login.SessionID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, "/bets/summary", login.SessionID, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBulkPlaceAndUndoOverHTTP(t *testing.T) {
	app := setupApp(t)
	user := createUser(t, "player1", "secret", false)
	sid := openSession(t, user)

	resp, body := doJSON(t, app, http.MethodPost, "/bets/bulk", sid, fiber.Map{
		"bet_type": "SP",
		"columns":  []int{1},
		"amount":   "10",
		"bazar":    models.BazarKalyanOpen,
		"bet_date": "2026-08-28",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Message)

	var action models.BulkBetAction
	require.NoError(t, json.Unmarshal(body.Data, &action))
	assert.Equal(t, 12, action.TotalBets)

	// The batch shows up in the book.
	resp, body = doJSON(t, app, http.MethodGet, "/bets/", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	assert.Len(t, rows, 12)

	// Undo without an id takes the last active batch.
	resp, _ = doJSON(t, app, http.MethodPost, "/bets/undo", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// A second undo has nothing left to take.
	resp, _ = doJSON(t, app, http.MethodPost, "/bets/undo", sid, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Undoing the same id again conflicts.
	resp, _ = doJSON(t, app, http.MethodPost, "/bets/undo", sid, fiber.Map{"action_id": action.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBulkValidationOverHTTP(t *testing.T) {
	app := setupApp(t)
	user := createUser(t, "player1", "secret", false)
	sid := openSession(t, user)

	cases := []struct {
		name string
		body fiber.Map
	}{
		{"unknown scheme", fiber.Map{
			"bet_type": "TRIPLE", "amount": "1", "bazar": models.BazarKalyanOpen,
		}},
		{"bad column", fiber.Map{
			"bet_type": "SP", "columns": []int{0}, "amount": "1", "bazar": models.BazarKalyanOpen,
		}},
		{"bad bazar", fiber.Map{
			"bet_type": "SP", "columns": []int{1}, "amount": "1", "bazar": "MIDNIGHT",
		}},
		{"missing digit", fiber.Map{
			"bet_type": "COMMAN_PANA_36", "amount": "1", "bazar": models.BazarKalyanOpen,
		}},
		{"motar digits too short", fiber.Map{
			"bet_type": "MOTAR", "digits": "123", "amount": "1", "bazar": models.BazarKalyanOpen,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, http.MethodPost, "/bets/bulk", sid, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestTotalOverHTTP(t *testing.T) {
	app := setupApp(t)
	user := createUser(t, "player1", "secret", false)
	sid := openSession(t, user)

	for _, number := range []string{"678", "123"} {
		resp, _ := doJSON(t, app, http.MethodPost, "/bets/", sid, fiber.Map{
			"number": number, "amount": "10", "bazar": models.BazarKalyanOpen,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/bets/total", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var total struct {
		TotalAmount string `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &total))
	assert.Equal(t, "20", total.TotalAmount)
}

func TestAdminCancelOverHTTP(t *testing.T) {
	app := setupApp(t)
	player := createUser(t, "player1", "secret", false)
	admin := createUser(t, "boss", "secret", true)
	playerSID := openSession(t, player)
	adminSID := openSession(t, admin)

	resp, body := doJSON(t, app, http.MethodPost, "/bets/", playerSID, fiber.Map{
		"number": "678", "amount": "5", "bazar": models.BazarSrideviOpen,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bet models.Bet
	require.NoError(t, json.Unmarshal(body.Data, &bet))

	// Players cannot reach the admin surface.
	resp, _ = doJSON(t, app, http.MethodPost, "/admin/bets/cancel", playerSID, fiber.Map{"bet_id": bet.ID})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/admin/bets/cancel", adminSID, fiber.Map{"bet_id": bet.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The cancelled bet is gone from the player's view.
	resp, body = doJSON(t, app, http.MethodGet, "/bets/summary", playerSID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary struct {
		TotalBets int64 `json:"total_bets"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &summary))
	assert.Zero(t, summary.TotalBets)
}
