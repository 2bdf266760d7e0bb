package main

import (
	"fmt"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendly/attendance-backend-go/internal/service/auth"
	holidayService "github.com/attendly/attendance-backend-go/internal/service/holiday"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
	requestService "github.com/attendly/attendance-backend-go/internal/service/request"
	summaryService "github.com/attendly/attendance-backend-go/internal/service/summary"
	userService "github.com/attendly/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := cfg.Attendance.Location()
	if err != nil {
		fmt.Println("Error loading attendance timezone:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, loc, cfg.Attendance.StandardWorkMinutes)
	requestSvc := requestService.NewRequestService(db, requestRepo, attendanceRepo, loc, cfg.Attendance.StandardWorkMinutes)
	summarySvc := summaryService.NewSummaryService(
		attendanceRepo,
		holidayRepo,
		userRepo,
		requestSvc,
		loc,
		cfg.Attendance.StandardWorkMinutes,
		cfg.Attendance.LateCutoff,
	)
	reportSvc := reportService.NewReportService(attendanceRepo, loc)
	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtSvc)
	userSvc := userService.NewUserService(userRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, requestSvc, summarySvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	adminHandler := appHTTP.NewAdminHandler(attendanceSvc, requestSvc, summarySvc, reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.CORSOrigins,
		},
		jwtSvc,
		authHandler,
		attendanceHandler,
		requestHandler,
		userHandler,
		holidayHandler,
		adminHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
