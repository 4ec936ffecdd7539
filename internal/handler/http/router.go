package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/jwt"
)

type RouterOptions struct {
	Env         string
	FrontendURL string
	LogLevel    slog.Level
}

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Report     ReportHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signin", h.Auth.SignIn)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Post("/signout", h.Auth.SignOut)
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(employee.PermissionAttendanceCreate)).Post("/checkin", h.Attendance.CheckIn)
				r.With(middleware.RequirePermission(employee.PermissionAttendanceCreate)).Post("/checkout", h.Attendance.CheckOut)
				r.With(middleware.RequirePermission(employee.PermissionAttendanceViewOwn)).Get("/status", h.Attendance.Status)
				r.With(middleware.RequirePermission(employee.PermissionAttendanceViewOwn)).Get("/", h.Attendance.List)

				// HR / Admin
				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(employee.PermissionAttendanceViewAll)).Get("/", h.Attendance.Get)
					r.With(middleware.RequirePermission(employee.PermissionAttendanceManage)).Put("/", h.Attendance.Update)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(employee.PermissionLeaveCreate)).Post("/", h.Leave.Apply)
				r.With(middleware.RequirePermission(employee.PermissionLeaveViewOwn)).Get("/", h.Leave.List)
				r.With(middleware.RequirePermission(employee.PermissionLeaveApprove)).Put("/{id}/status", h.Leave.UpdateStatus)
			})

			r.Route("/reports", func(r chi.Router) {
				r.With(middleware.RequirePermission(employee.PermissionReportsViewOwn)).Get("/attendance", h.Report.Attendance)
				r.With(middleware.RequirePermission(employee.PermissionReportsExport)).Get("/attendance/export", h.Report.ExportAttendance)
				r.With(middleware.RequirePermission(employee.PermissionReportsViewOwn)).Get("/dashboard", h.Report.Dashboard)
			})
		})
	})
	return r
}
