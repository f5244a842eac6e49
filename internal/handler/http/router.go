package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sandevex/hiring-backend-go/internal/config"
	"github.com/sandevex/hiring-backend-go/internal/handler/http/middleware"
	"github.com/sandevex/hiring-backend-go/internal/pkg/session"
)

func NewRouter(
	cfg *config.Config,
	sessionService session.Service,
	authHandler AuthHandler,
	offerHandler OfferHandler,
	candidateHandler CandidateHandler,
	preferenceHandler PreferenceHandler,
	internHandler InternHandler,
	auditHandler AuditHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hiring-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Public offer response, reached from the email links
		r.Post("/respond", offerHandler.Respond)

		// Requires an admin session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(sessionService.JWTAuth(), session.FromCookie))
			r.Use(middleware.SessionRequired(sessionService.JWTAuth()))

			r.Route("/offers", func(r chi.Router) {
				r.Get("/", offerHandler.List)
				r.Post("/", offerHandler.Create)
				r.Post("/resend", offerHandler.Resend)
				r.Post("/physical-letter", offerHandler.PhysicalLetter)
				r.Get("/summary", reportHandler.OfferSummary)
				r.Get("/status/{candidateID}", offerHandler.Status)
			})

			r.Route("/candidates", func(r chi.Router) {
				r.Get("/", candidateHandler.List)
				r.Get("/colleges", candidateHandler.Colleges)
				r.Get("/with-offer-status", candidateHandler.WithOfferStatus)
				r.Post("/sync", candidateHandler.Sync)
				r.Get("/{candidateID}", candidateHandler.Get)
			})

			r.Route("/domain-preferences", func(r chi.Router) {
				r.Get("/", preferenceHandler.List)
				r.Get("/filters", preferenceHandler.Filters)
				r.Get("/summary", preferenceHandler.Summary)
				r.Post("/sync", preferenceHandler.Sync)
			})

			r.Route("/interns", func(r chi.Router) {
				r.Get("/", internHandler.List)
				r.Post("/", internHandler.Convert)
				r.Get("/summary", internHandler.Summary)
				r.Get("/{internID}", internHandler.Get)
				r.Put("/{internID}", internHandler.Update)
			})

			r.Route("/audit-logs", func(r chi.Router) {
				r.Get("/", auditHandler.Query)
				r.Get("/stats", auditHandler.Stats)
				r.Get("/operator-activity", auditHandler.OperatorActivity)
			})

			r.Get("/dashboard/stats", reportHandler.Dashboard)
			r.Post("/sync/offer-letters", offerHandler.SyncLetters)
		})
	})

	return r
}
