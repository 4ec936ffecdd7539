package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/config"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/report"
	"github.com/hrms-workforce/hrms-backend-go/internal/fixtures"
	appHTTP "github.com/hrms-workforce/hrms-backend-go/internal/handler/http"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/clock"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/cron"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-workforce/hrms-backend-go/internal/repository/postgresql"
	"github.com/hrms-workforce/hrms-backend-go/internal/repository/sqlite"
	attendanceService "github.com/hrms-workforce/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/hrms-workforce/hrms-backend-go/internal/service/auth"
	leaveService "github.com/hrms-workforce/hrms-backend-go/internal/service/leave"
	reportService "github.com/hrms-workforce/hrms-backend-go/internal/service/report"
)

type repositories struct {
	employee   employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	leave      leave.LeaveRequestRepository
	report     report.ReportRepository
	tx         database.Transactor
	close      func()
}

func openRepositories(ctx context.Context, cfg *config.Config, loc *time.Location) (repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			return repositories{}, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return repositories{}, err
		}
		return repositories{
			employee:   sqlite.NewEmployeeRepository(db),
			attendance: sqlite.NewAttendanceRepository(db, loc),
			leave:      sqlite.NewLeaveRequestRepository(db, loc),
			report:     sqlite.NewReportRepository(db),
			tx:         sqlite.NewTransactor(db),
			close:      func() { db.Close() },
		}, nil
	default:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return repositories{}, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return repositories{}, err
		}
		return repositories{
			employee:   postgresql.NewEmployeeRepository(db),
			attendance: postgresql.NewAttendanceRepository(db, loc),
			leave:      postgresql.NewLeaveRequestRepository(db, loc),
			report:     postgresql.NewReportRepository(db),
			tx:         postgresql.NewTransactor(db),
			close:      db.Close,
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid timezone: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, loc)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer repos.close()

	if _, err := fixtures.SeedAdmin(ctx, repos.tx, repos.employee, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Fatal("Failed to seed administrator: ", err)
	}

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		log.Fatal("Failed to initialize JWT service: ", err)
	}
	clk := clock.New(loc)

	scheduler := cron.NewScheduler()
	cron.RegisterTokenJanitor(scheduler, JWTService, cron.RevokedTokenSweepInterval)
	scheduler.Start(ctx)

	authService := serviceAuth.NewAuthService(repos.employee, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, clk)
	leaveSvc := leaveService.NewLeaveService(repos.leave, clk)
	reportSvc := reportService.NewReportService(repos.report, repos.attendance, repos.leave, repos.employee, clk)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
			LogLevel:    cfg.SlogLevel(),
		},
		JWTService,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(authService),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Leave:      appHTTP.NewLeaveHandler(leaveSvc),
			Report:     appHTTP.NewReportHandler(reportSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "driver", cfg.Database.Driver, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	scheduler.Wait()
	slog.Info("Server stopped")
}
