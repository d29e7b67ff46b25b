package httpserver

import (
	"net/http"

	"voltedge/internal/http/handlers"
	"voltedge/internal/http/middleware"
)

// RouterDeps collects handler dependencies.
type RouterDeps struct {
	AuthHandlers        *handlers.AuthHandlers
	UserHandlers        *handlers.UserHandlers
	StationHandlers     *handlers.StationHandlers
	SessionHandlers     *handlers.SessionHandlers
	MaintenanceHandlers *handlers.MaintenanceHandlers
	HealthHandler       http.HandlerFunc
	StatusFeed          http.HandlerFunc
}

// NewRouter wires HTTP routes with middleware. Station and charger reads
// are public; mutations require auth, administration additionally requires
// the admin role.
func NewRouter(deps RouterDeps, auth func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	authenticated := func(handler http.HandlerFunc) http.Handler {
		return middleware.Chain(handler, auth)
	}
	admin := func(handler http.HandlerFunc) http.Handler {
		return middleware.Chain(handler, auth, middleware.RequireAdmin)
	}

	mux.HandleFunc("GET /health", deps.HealthHandler)
	mux.HandleFunc("GET /ws/status", deps.StatusFeed)

	mux.HandleFunc("POST /auth/register", deps.AuthHandlers.Register)
	mux.HandleFunc("POST /auth/token", deps.AuthHandlers.Login)
	mux.Handle("GET /auth/me", authenticated(deps.AuthHandlers.Me))

	mux.Handle("GET /users", admin(deps.UserHandlers.List))
	mux.Handle("GET /users/{id}", authenticated(deps.UserHandlers.Get))
	mux.Handle("POST /users/{id}/recharge", authenticated(deps.UserHandlers.Recharge))
	mux.Handle("GET /users/{id}/history", authenticated(deps.UserHandlers.History))

	mux.Handle("POST /stations", admin(deps.StationHandlers.Create))
	mux.HandleFunc("GET /stations", deps.StationHandlers.List)
	mux.HandleFunc("GET /stations/{id}", deps.StationHandlers.Get)
	mux.Handle("DELETE /stations/{id}", admin(deps.StationHandlers.Delete))
	mux.HandleFunc("GET /stations/{id}/availability", deps.StationHandlers.Availability)
	mux.Handle("GET /stations/{id}/consumption", admin(deps.StationHandlers.Consumption))
	mux.Handle("POST /stations/{id}/chargers", admin(deps.StationHandlers.AddCharger))
	mux.HandleFunc("GET /chargers", deps.StationHandlers.ListChargers)
	mux.HandleFunc("GET /chargers/{id}", deps.StationHandlers.GetCharger)

	mux.Handle("POST /sessions", authenticated(deps.SessionHandlers.Start))
	mux.Handle("POST /sessions/close", authenticated(deps.SessionHandlers.Close))

	mux.Handle("POST /maintenance", admin(deps.MaintenanceHandlers.Schedule))
	mux.Handle("GET /maintenance", admin(deps.MaintenanceHandlers.List))
	mux.Handle("POST /maintenance/{id}/start", admin(deps.MaintenanceHandlers.Start))
	mux.Handle("POST /maintenance/{id}/complete", admin(deps.MaintenanceHandlers.Complete))

	return mux
}
