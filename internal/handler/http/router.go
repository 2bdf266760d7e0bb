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

type RouterConfig struct {
	AppName        string
	AppEnv         string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	requestHandler RequestHandler,
	userHandler UserHandler,
	holidayHandler HolidayHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/me", userHandler.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/today", attendanceHandler.TodayState)
				r.Get("/me", attendanceHandler.MyAttendance)
				r.Get("/monthly", attendanceHandler.MonthlyAttendance)
				r.Get("/summary", attendanceHandler.MySummary)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", requestHandler.CreateRequest)
				r.Get("/me", requestHandler.MyRequests)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/dashboard", adminHandler.Dashboard)

				r.Route("/requests", func(r chi.Router) {
					r.Get("/", adminHandler.PendingRequests)
					r.Post("/{id}/approve", adminHandler.ApproveRequest)
					r.Post("/{id}/reject", adminHandler.RejectRequest)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Patch("/{id}", adminHandler.EditTime)
					r.Get("/months", adminHandler.AvailableMonths)
					r.Get("/export", adminHandler.ExportAttendance)
				})

				r.Get("/payroll", adminHandler.Payroll)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userHandler.ListUsers)
					r.Post("/", userHandler.CreateUser)
					r.Put("/{id}", userHandler.UpdateUser)
					r.Delete("/{id}", userHandler.DeactivateUser)
					r.Get("/{id}/attendance", adminHandler.UserMonthlyAttendance)
					r.Get("/{id}/summary", adminHandler.UserSummary)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", holidayHandler.ListHolidays)
					r.Post("/", holidayHandler.CreateHoliday)
					r.Put("/{id}", holidayHandler.UpdateHoliday)
					r.Delete("/{id}", holidayHandler.DeleteHoliday)
				})
			})
		})
	})
	return r
}
