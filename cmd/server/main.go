package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StudentHub/internal/api"
	"github.com/leon37/StudentHub/internal/api/controller"
	"github.com/leon37/StudentHub/internal/api/middleware"
	"github.com/leon37/StudentHub/internal/auth"
	"github.com/leon37/StudentHub/internal/config"
	"github.com/leon37/StudentHub/internal/infrastructure/database"
	"github.com/leon37/StudentHub/internal/repository"
	"github.com/leon37/StudentHub/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           StudentHub API
// @version         1.0
// @description     学生信息管理系统：JWT 认证、学生 CRUD、搜索与统计

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 请在输入框中输入 "Bearer <token>" (注意 Bearer 和 token 之间有空格)

func main() {
	// 1. 初始化 Logger，配置加载完成后按配置重建
	slog.SetDefault(setupLogger(config.LogConfig{Level: "info", Format: "json"}))
	slog.Info("StudentHub 系统启动中...")

	conf, err := config.LoadConfig()
	if err != nil {
		slog.Error("无法加载配置", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(setupLogger(conf.Log))
	gin.SetMode(conf.Server.Mode)

	if err := run(conf); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Infra Initialization
	db, err := database.NewConnection(conf.Database) // 这里会自动建表
	if err != nil {
		return err
	}
	defer database.Close(db)
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	var (
		metrics *middleware.Metrics
		reg     *prometheus.Registry
	)
	authOpts := []service.AuthOption{}
	if conf.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = middleware.NewMetrics(reg)
		authOpts = append(authOpts, service.WithLoginCounter(metrics.Logins))
	}

	// 3. Layer Wiring (依赖注入)
	tokens := auth.NewTokenService(conf.JWT.Secret,
		auth.WithTTL(conf.JWT.TTL()),
		auth.WithIssuer(conf.JWT.Issuer),
	)
	hasher := auth.NewHasher(conf.Security.BcryptCost)
	authSvc := service.NewAuthService(repository.NewUserRepository(db), hasher, tokens, authOpts...)
	studentSvc := service.NewStudentService(repository.NewStudentRepo(db))

	opts := api.Options{Swagger: conf.Server.Swagger, Metrics: metrics}
	if reg != nil {
		opts.Gatherer = reg
	}
	router := api.NewRouter(api.Controllers{
		Auth:     controller.NewAuthController(authSvc),
		Users:    controller.NewUserController(authSvc),
		Students: controller.NewStudentController(studentSvc),
		Health:   controller.NewHealthController(sqlDB),
	}, authSvc, opts)

	// 4. Server Start
	srv := &http.Server{
		Addr:              conf.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: conf.Server.ReadHeaderTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("StudentHub Web Server 启动中", "addr", conf.Server.Port, "driver", conf.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// 5. 优雅退出
	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{AddSource: true, Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
