package api

import (
	"net/http"
	"time"

	// Registers the generated OpenAPI document with swag.
	_ "github.com/anurag-deore/ai-monitoring-analytics/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates the chi router serving the front-end API. requestTimeout
// bounds the plain JSON routes and should exceed the backend client timeout.
func NewRouter(sessions *SessionHandler, modals *ModalHandler, dashboards *DashboardHandler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))

			// --- Session ---
			r.Get("/session", sessions.GetSession)
			r.Put("/session/{chatID}", sessions.OpenSession)
			r.Delete("/session", sessions.NewSession)
			r.Post("/queries", sessions.SubmitQuery)

			// --- Chats ---
			r.Get("/chats", sessions.ListChats)
			r.Delete("/chats/{chatID}", sessions.DeleteChat)
			r.Put("/chats/{chatID}/title", sessions.RenameChat)

			// --- Dashboards ---
			r.Get("/dashboards", dashboards.ListDashboards)
			r.Get("/dashboards/{dashboardID}/charts", dashboards.DashboardCharts)

			// --- Modal ---
			r.Get("/modal", modals.GetModal)
			r.Delete("/modal", modals.CloseModal)
			r.Post("/modal/{kind}", modals.OpenModal)
			r.Post("/modal/{kind}/submit", modals.SubmitModal)
		})

		// Long-lived connection; no timeout.
		r.Get("/events", sessions.HandleEvents)
	})

	return r
}
