// JobGenix CRM backend entrypoint: loads configuration, opens the CSV-backed
// stores, wires services and the notification dispatcher, and serves HTTP
// until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	_ "github.com/jobgenix/crm-system/docs"
	"github.com/jobgenix/crm-system/internal/api"
	"github.com/jobgenix/crm-system/internal/core/service"
	"github.com/jobgenix/crm-system/internal/infrastructure/config"
	"github.com/jobgenix/crm-system/internal/infrastructure/db/redis"
	"github.com/jobgenix/crm-system/internal/infrastructure/docstore"
	"github.com/jobgenix/crm-system/internal/infrastructure/notify"
	"github.com/jobgenix/crm-system/internal/infrastructure/queue"
	"github.com/jobgenix/crm-system/internal/infrastructure/storage/csvstore"
	"github.com/jobgenix/crm-system/pkg/logger"
)

// @title        JobGenix CRM API
// @version      1.0
// @description  Employee management backend: auth, tasks, leave, attendance, audit log and documents.
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("cannot create data directory")
	}

	// --- CSV-backed stores ---
	users, err := csvstore.NewUserRepository(filepath.Join(cfg.DataDir, "users.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("open user table")
	}
	tasks, err := csvstore.NewTaskRepository(filepath.Join(cfg.DataDir, "tasks.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("open task table")
	}
	leaves, err := csvstore.NewLeaveRepository(filepath.Join(cfg.DataDir, "leaves.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("open leave table")
	}
	attendance, err := csvstore.NewAttendanceRepository(filepath.Join(cfg.DataDir, "attendance.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("open attendance table")
	}
	audit, err := csvstore.NewAuditRepository(filepath.Join(cfg.DataDir, "audit.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("open audit table")
	}
	documents, err := docstore.New(cfg.DocumentDir)
	if err != nil {
		log.Fatal().Err(err).Msg("open document store")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Notifications: SMTP sender behind a sharded dispatcher, with
	// optional Redis-backed dedup. ---
	var (
		rdb   *goredis.Client
		dedup queue.DedupChecker = queue.NoopDedup{}
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		dedup = redis.NewDedupChecker(rdb)
	}

	notifier := notify.NewSMTPNotifier(notify.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Domain:   cfg.SMTP.Domain,
	})
	dispatcher := queue.NewDispatcher(runtime.NumCPU(), notifier, dedup, log)
	dispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(users, audit, cfg.JWTSecret, 24*time.Hour, log)
	taskService := service.NewTaskService(tasks, log)
	leaveService := service.NewLeaveService(leaves, dispatcher, log)
	attendanceService := service.NewAttendanceService(attendance, log)
	auditService := service.NewAuditService(audit, log)
	documentService := service.NewDocumentService(documents, cfg.SpreadsheetLimit, log)

	e := api.NewRouter(api.Dependencies{
		Auth:            authService,
		Tasks:           taskService,
		Leaves:          leaveService,
		Attendance:      attendanceService,
		Audit:           auditService,
		Documents:       documentService,
		JWTSecret:       cfg.JWTSecret,
		AuditTimeFormat: cfg.AuditTimeFormat,
		DataDir:         cfg.DataDir,
		Redis:           rdb,
		Logger:          log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	// Flush the CSV tables before exiting.
	for name, closer := range map[string]interface{ Close() error }{
		"users":      users,
		"tasks":      tasks,
		"leaves":     leaves,
		"attendance": attendance,
		"audit":      audit,
	} {
		if err := closer.Close(); err != nil {
			log.Error().Err(err).Str("table", name).Msg("flush table")
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
