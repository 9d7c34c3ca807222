package routes

import (
	"github.com/gofiber/fiber/v2"

	"matka/controllers/auth"
	"matka/controllers/bets"
	"matka/middlewares"
)

func Setup(app *fiber.App) {
	app.Post("/auth/login", auth.Login)
	app.Post("/auth/logout", middlewares.SessionAuth, auth.Logout)
	app.Get("/auth/me", middlewares.SessionAuth, auth.Me)

	betroutes := app.Group("/bets", middlewares.SessionAuth)
	betroutes.Post("/", bets.Place)
	betroutes.Post("/bulk", bets.PlaceBulk)
	betroutes.Post("/undo", bets.Undo)
	betroutes.Post("/delete", bets.Delete)
	betroutes.Get("/", bets.List)
	betroutes.Get("/summary", bets.Summary)
	betroutes.Get("/total", bets.Total)
	betroutes.Get("/actions", bets.Actions)
	betroutes.Get("/last-action", bets.LastAction)

	adminroutes := app.Group("/admin", middlewares.SessionAuth, middlewares.AdminOnly)
	adminroutes.Post("/bets/cancel", bets.Cancel)
}
