package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/cron"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/pkg/oauth"
	"github.com/attendly/attendance-backend-go/internal/pkg/salary"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendly/attendance-backend-go/internal/service/auth"
	employeeService "github.com/attendly/attendance-backend-go/internal/service/employee"
	holidayService "github.com/attendly/attendance-backend-go/internal/service/holiday"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
	settingsService "github.com/attendly/attendance-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	adminRepo := postgresql.NewAdminRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	policy := salary.DefaultPolicy()

	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, settingsSvc, policy)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, settingsSvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, jwtRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, holidayRepo, settingsSvc, policy)
	authSvc := authService.NewAuthService(adminRepo, employeeRepo, jwtRepo, jwtSvc, googleSvc)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		cfg.App.FrontendURL,
		authHandler,
		attendanceHandler,
		employeeHandler,
		holidayHandler,
		settingsHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewHolidayJobs(holidaySvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := server.Shutdown(context.Background()); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
