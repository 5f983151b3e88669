package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/harborops/stevedoring-backend-go/internal/handler/http/middleware"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/jwt"
)

func NewRouter(jwtService jwt.Service, env string, billingHandler BillingHandler, settingHandler SettingHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "stevedoring-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/operations/{operationID}", func(r chi.Router) {
				r.Route("/bills", func(r chi.Router) {
					r.Post("/", billingHandler.CreateBills)
					r.Get("/", billingHandler.ListBills)
				})
				r.Post("/groups/{groupID}/recalculate", billingHandler.RecalculateGroupHours)
			})

			r.Route("/bills/{id}", func(r chi.Router) {
				r.Get("/", billingHandler.GetBill)
				r.Put("/", billingHandler.UpdateBill)
				r.Patch("/status", billingHandler.UpdateBillStatus)
				r.Delete("/", billingHandler.DeleteBill)
			})

			r.Route("/settings/{name}", func(r chi.Router) {
				r.Get("/", settingHandler.GetSetting)
				r.Put("/", settingHandler.UpdateSetting)
			})
		})
	})
	return r
}
