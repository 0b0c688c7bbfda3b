package handlers

import (
	"net/http"

	"eris-api/internal/config"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck() error
}

// Stores bundles the data access the router wires into handlers.
type Stores struct {
	Profiles ProfileStore
	Details  DetailsStore
	Photos   PhotoStore
}

// NewRouter builds the /api route table. Every route answers with and
// without a trailing slash.
func NewRouter(admin config.AdminConfig, health HealthChecker, stores Stores) *http.ServeMux {
	authHandler := NewAuthHandler(admin)
	profileHandler := NewProfileHandler(stores.Profiles)
	detailsHandler := NewDetailsHandler(stores.Details)
	photoHandler := NewPhotoHandler(stores.Photos)

	mux := http.NewServeMux()

	handle(mux, "GET /api/health", healthHandler(health))

	handle(mux, "POST /api/Login", authHandler.Login)

	handle(mux, "GET /api/AssessmentProfile", profileHandler.List)
	handle(mux, "GET /api/AssessmentProfile/{id}", profileHandler.Get)
	handle(mux, "POST /api/AssessmentProfile", profileHandler.Create)
	handle(mux, "PUT /api/AssessmentProfile/{id}", profileHandler.Update)

	handle(mux, "GET /api/AssessmentDetails", detailsHandler.List)
	handle(mux, "GET /api/AssessmentDetails/{id}", detailsHandler.Get)
	handle(mux, "POST /api/AssessmentDetails", detailsHandler.Create)
	handle(mux, "PUT /api/AssessmentDetails/{id}", detailsHandler.Update)

	handle(mux, "GET /api/Photo", photoHandler.List)
	handle(mux, "GET /api/Photo/{id}", photoHandler.Get)
	handle(mux, "POST /api/Photo", photoHandler.Create)

	return mux
}

// handle registers a pattern plus its trailing-slash twin ({$} matches only
// the exact slash-terminated path).
func handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, h)
	mux.HandleFunc(pattern+"/{$}", h)
}

// healthHandler reports liveness
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 503 {object} map[string]bool
// @Router /health [get]
func healthHandler(health HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := health.HealthCheck(); err != nil {
			JSONResponse(w, http.StatusServiceUnavailable, map[string]bool{"ok": false})
			return
		}
		JSONResponse(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
