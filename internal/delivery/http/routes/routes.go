package routes

import (
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/user"
	"job-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health *handler.HealthHandler
	Jobs   *handler.JobHandler
	Users  *handler.UserHandler
	Auth   *middleware.AuthMiddleware
	WS     *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.Health.HandleHealth)

	api := app.Group("/api/v1")
	r.registerJobs(api.Group("/job"))
	r.registerUsers(api.Group("/user"))

	if r.WS != nil {
		api.Get("/ws/jobs", r.WS.HandleJobsWS)
	}
}

func (r *Registry) registerJobs(g fiber.Router) {
	auth := r.Auth.Middleware()
	employerOnly := middleware.RequireRole(user.RoleEmployer)

	g.Get("/getall", r.Jobs.HandleGetAll)
	g.Get("/getCategories", r.Jobs.HandleGetCategories)
	g.Post("/post", r.Jobs.HandlePost, auth, employerOnly)
	g.Get("/getmyjobs", r.Jobs.HandleGetMyJobs, auth, employerOnly)
	g.Put("/update/:id", r.Jobs.HandleUpdate, auth, employerOnly)
	g.Delete("/delete/:id", r.Jobs.HandleDelete, auth, employerOnly)
	g.Get("/:id", r.Jobs.HandleGetSingle, auth)
}

func (r *Registry) registerUsers(g fiber.Router) {
	auth := r.Auth.Middleware()

	g.Post("/register", r.Users.HandleRegister)
	g.Post("/login", r.Users.HandleLogin)
	g.Get("/logout", r.Users.HandleLogout, auth)
	g.Get("/getuser", r.Users.HandleGetUser, auth)
}
