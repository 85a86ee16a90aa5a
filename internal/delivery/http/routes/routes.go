package routes

import (
	"skillmapper/internal/delivery/http/handler"
	"skillmapper/internal/delivery/http/middleware"
	"skillmapper/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	auth     *handler.AuthHandler
	user     *handler.UserHandler
	static   *handler.StaticRoadmapHandler
	personal *handler.PersonalRoadmapHandler
	ws       *ws.Handler
	authMw   *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	user *handler.UserHandler,
	static *handler.StaticRoadmapHandler,
	personal *handler.PersonalRoadmapHandler,
	wsHandler *ws.Handler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:   health,
		auth:     auth,
		user:     user,
		static:   static,
		personal: personal,
		ws:       wsHandler,
		authMw:   authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")

	if r.auth != nil {
		r.auth.RegisterRoutes(api.Group("/auth"))
	}

	if r.user != nil {
		r.user.RegisterRoutes(api.Group("/user", r.authMw.Middleware()))
	}

	if r.static != nil {
		r.static.RegisterRoutes(api.Group("/staticRoles"))
	}

	if r.personal != nil {
		r.personal.RegisterRoutes(api.Group("/personalisedRole", r.authMw.Middleware()))
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
}
