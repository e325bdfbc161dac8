package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/pointledger/docs"
	operatorhandlers "github.com/GlebRadaev/pointledger/internal/handlers/operator"
	pointshandlers "github.com/GlebRadaev/pointledger/internal/handlers/points"
	"github.com/GlebRadaev/pointledger/internal/service"
	"github.com/GlebRadaev/pointledger/pkg/auth"
)

type PointsHandler interface {
	Earn(w http.ResponseWriter, r *http.Request)
	Use(w http.ResponseWriter, r *http.Request)
	GetTotal(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
	GetEvent(w http.ResponseWriter, r *http.Request)
	Rollback(w http.ResponseWriter, r *http.Request)
}

type OperatorHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
	Sweep(w http.ResponseWriter, r *http.Request)
	CheckConsistency(w http.ResponseWriter, r *http.Request)
	OverrideExpiry(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PointsHandler   PointsHandler
	OperatorHandler OperatorHandler
	JWTService      auth.JWTServiceInterface
	AllowedOrigins  []string
}

func New(s *service.Services, allowedOrigins []string) *Handlers {
	return &Handlers{
		PointsHandler:   pointshandlers.New(s.Ledger),
		OperatorHandler: operatorhandlers.New(s.Ledger, s.AuthService),
		JWTService:      s.JWTService,
		AllowedOrigins:  allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	origins := h.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Authorization"},
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/operator/token", h.OperatorHandler.IssueToken)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.JWTService))

			r.Route("/members/{id}", func(r chi.Router) {
				r.Use(auth.RequireMember("id"))
				r.Get("/points", h.PointsHandler.ListEvents)
				r.Get("/points/total", h.PointsHandler.GetTotal)
				r.Post("/points/use", h.PointsHandler.Use)
				r.With(auth.RequireOperator).Post("/points/earn", h.PointsHandler.Earn)
			})
			r.Route("/points/events/{eventId}", func(r chi.Router) {
				r.Get("/", h.PointsHandler.GetEvent)
				r.With(auth.RequireOperator).Post("/rollback", h.PointsHandler.Rollback)
			})
			r.Route("/operator", func(r chi.Router) {
				r.Use(auth.RequireOperator)
				r.Post("/sweep", h.OperatorHandler.Sweep)
				r.Get("/members/{id}/consistency", h.OperatorHandler.CheckConsistency)
				r.Put("/events/{eventId}/expire-at", h.OperatorHandler.OverrideExpiry)
			})
		})
	})

	return r
}
