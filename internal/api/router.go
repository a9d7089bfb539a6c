package api

import (
	"sync"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/jobgenix/crm-system/internal/api/handler"
	"github.com/jobgenix/crm-system/internal/api/middleware"
	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

// Dependencies carries everything the router needs. Services are injected so
// tests can swap in stubs without touching the CSV files.
type Dependencies struct {
	Auth       ports.AuthService
	Tasks      ports.TaskService
	Leaves     ports.LeaveService
	Attendance ports.AttendanceService
	Audit      ports.AuditService
	Documents  ports.DocumentService

	JWTSecret       string
	AuditTimeFormat string
	DataDir         string

	// Redis is optional; nil skips the readiness ping.
	Redis *redis.Client

	Logger zerolog.Logger
}

// The echoprometheus middleware registers its collectors with the default
// registry; building more than one router (tests do) must not register twice.
var (
	promOnce       sync.Once
	promMiddleware echo.MiddlewareFunc
)

func metricsMiddleware() echo.MiddlewareFunc {
	promOnce.Do(func() {
		promMiddleware = echoprometheus.NewMiddleware("jobgenix")
	})
	return promMiddleware
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(metricsMiddleware())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	taskHandler := handler.NewTaskHandler(deps.Tasks)
	leaveHandler := handler.NewLeaveHandler(deps.Leaves)
	attendanceHandler := handler.NewAttendanceHandler(deps.Attendance)
	auditHandler := handler.NewAuditHandler(deps.Audit, deps.AuditTimeFormat)
	documentHandler := handler.NewDocumentHandler(deps.Documents)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	employeeOnly := middleware.RBAC(domain.RoleEmployee)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DataDir, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/auth/logout", authHandler.Logout, anyRole)
	v1.POST("/users", authHandler.CreateUser, adminOnly)
	v1.GET("/users", authHandler.ListUsers, adminOnly)
	v1.DELETE("/users/:username", authHandler.DeleteUser, adminOnly)

	v1.GET("/tasks", taskHandler.List, anyRole)
	v1.POST("/tasks", taskHandler.Add, adminOnly)
	v1.PUT("/tasks/:selector/status", taskHandler.UpdateStatus, employeeOnly)
	v1.DELETE("/tasks/:selector", taskHandler.Delete, adminOnly)
	v1.DELETE("/tasks", taskHandler.DeleteAll, adminOnly)

	v1.GET("/leaves", leaveHandler.List, anyRole)
	v1.POST("/leaves", leaveHandler.Apply, employeeOnly)
	v1.PUT("/leaves/:selector/decision", leaveHandler.Decide, adminOnly)

	v1.POST("/attendance/check-in", attendanceHandler.CheckIn, employeeOnly)
	v1.POST("/attendance/check-out", attendanceHandler.CheckOut, employeeOnly)
	v1.GET("/attendance", attendanceHandler.Filter, anyRole)

	v1.GET("/audit", auditHandler.Filter, adminOnly)
	v1.GET("/audit/today", auditHandler.Today, adminOnly)
	v1.DELETE("/audit", auditHandler.Clear, adminOnly)

	v1.POST("/documents/:kind", documentHandler.Upload, anyRole)
	v1.GET("/documents/:kind", documentHandler.List, anyRole)
	v1.DELETE("/documents/:kind/:name", documentHandler.Delete, anyRole)

	return e
}
