package http

import (
	"log/slog"
	"os"

	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	holidayHandler HolidayHandler,
	settingsHandler SettingsHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendly"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/admin", authHandler.LoginAdmin)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/mark", attendanceHandler.Mark)
				r.Post("/early-off", attendanceHandler.MarkEarlyOff)
				r.With(middleware.SelfOrAdmin).Get("/employee/{uid}/month/{month}", attendanceHandler.GetMonthly)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/date/{date}", attendanceHandler.ListForDate)
					r.Put("/date/{date}/employee/{uid}", attendanceHandler.Update)
					r.Delete("/date/{date}/employee/{uid}", attendanceHandler.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.SelfOrAdmin).Get("/{uid}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{uid}", employeeHandler.Update)
					r.Post("/{uid}/deactivate", employeeHandler.Deactivate)
					r.Post("/{uid}/reactivate", employeeHandler.Reactivate)
					r.Delete("/{uid}", employeeHandler.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/month/{month}", holidayHandler.ListForMonth)
				r.Get("/{date}", holidayHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Add)
					r.Post("/seed-sundays", holidayHandler.SeedSundays)
					r.Delete("/{date}", holidayHandler.Delete)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", settingsHandler.Update)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.With(middleware.SelfOrAdmin).Get("/salary/{uid}/month/{month}", reportHandler.GetMonthlySalary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/month/{month}", reportHandler.GetMonthlyReport)
				})
			})
		})
	})
	return r
}
