package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "loanly-backend/internal/adapter/http"
	mw "loanly-backend/internal/adapter/middleware"
	"loanly-backend/internal/adapter/repository/mysql"
	"loanly-backend/internal/config"
	appDomain "loanly-backend/internal/domain/application"
	disbDomain "loanly-backend/internal/domain/disbursement"
	notifDomain "loanly-backend/internal/domain/notification"
	plafondDomain "loanly-backend/internal/domain/plafond"
	"loanly-backend/internal/infrastructure/cache"
	"loanly-backend/internal/infrastructure/db"
	"loanly-backend/internal/notifier"
	appUC "loanly-backend/internal/usecase/application"
	disbUC "loanly-backend/internal/usecase/disbursement"
	"loanly-backend/internal/usecase/eligibility"
	notifUC "loanly-backend/internal/usecase/notification"
)

func main() {
	_ = godotenv.Load()

	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()
	sugar := zlog.Sugar()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		sugar.Fatalw("invalid config", "err", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		sugar.Fatalw("mysql connect failed", "err", err)
	}
	if err := gdb.AutoMigrate(
		&plafondDomain.Plafond{},
		&plafondDomain.TenorRate{},
		&appDomain.Application{},
		&appDomain.ApplicationHistory{},
		&disbDomain.Disbursement{},
		&notifDomain.Notification{},
	); err != nil {
		sugar.Fatalw("auto-migrate failed", "err", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		sugar.Fatalw("redis connect failed", "err", err)
	}

	plafonds := mysql.NewPlafondRepository(gdb)
	apps := mysql.NewApplicationRepository(gdb)
	disbs := mysql.NewDisbursementRepository(gdb)
	notifs := mysql.NewNotificationRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	sink := notifier.NewStore(notifs, sugar)

	eligUC := eligibility.NewUsecase(apps, plafonds)
	applicationUC := appUC.NewUsecase(apps, plafonds, tx, sink)
	disbursementUC := disbUC.NewUsecase(apps, disbs, tx, sink)
	notificationUC := notifUC.NewUsecase(notifs)

	h := httpadp.NewHandler()
	eligH := httpadp.NewEligibilityHandler(eligUC)
	appH := httpadp.NewApplicationHandler(applicationUC)
	disbH := httpadp.NewDisbursementHandler(disbursementUC)
	notifH := httpadp.NewNotificationHandler(notificationUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")
	idemp := mw.Idempotency(rdb, sugar, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api.GET("/eligibility", eligH.CheckEligibility)

	api.POST("/applications", appH.Apply, idemp)
	api.GET("/applications/mine", appH.MyApplications)
	api.GET("/applications/approved", appH.MyApprovedApplications)
	api.GET("/applications/pending-review", appH.PendingReviewQueue,
		mw.RequireRole(string(appDomain.RoleMarketing)))
	api.GET("/applications/waiting-approval", appH.WaitingApprovalQueue,
		mw.RequireRole(string(appDomain.RoleBranchManager)))
	api.GET("/applications/:application_id/history", appH.History,
		mw.RequireRole(string(appDomain.RoleMarketing), string(appDomain.RoleBranchManager), string(appDomain.RoleBackOffice)))
	api.POST("/applications/:application_id/review", appH.Review,
		mw.RequireRole(string(appDomain.RoleMarketing)), idemp)
	api.POST("/applications/:application_id/approve", appH.Approve,
		mw.RequireRole(string(appDomain.RoleBranchManager)), idemp)

	api.POST("/disbursements", disbH.Request, idemp)
	api.GET("/disbursements/mine", disbH.MyDisbursements)
	api.GET("/disbursements/pending", disbH.PendingQueue,
		mw.RequireRole(string(appDomain.RoleBackOffice)))
	api.GET("/disbursements", disbH.All,
		mw.RequireRole(string(appDomain.RoleMarketing), string(appDomain.RoleBranchManager), string(appDomain.RoleBackOffice)))
	api.POST("/disbursements/:disbursement_id/process", disbH.Process,
		mw.RequireRole(string(appDomain.RoleBackOffice)), idemp)
	api.POST("/disbursements/:disbursement_id/cancel", disbH.Cancel,
		mw.RequireRole(string(appDomain.RoleBackOffice)), idemp)

	api.GET("/notifications", notifH.List)
	api.GET("/notifications/unread-count", notifH.UnreadCount)
	api.POST("/notifications/:id/read", notifH.MarkRead)
	api.POST("/notifications/read-all", notifH.MarkAllRead)

	addr := ":" + cfg.AppPort
	go func() {
		sugar.Infow("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server stopped", "err", err)
		}
	}()

	// drain in-flight requests on SIGINT/SIGTERM before exiting
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("shutdown", "err", err)
	}
	sugar.Infow("server stopped")
}
