package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ordersadmin.com/app/internal/audit"
	"ordersadmin.com/app/internal/config"
	apphttp "ordersadmin.com/app/internal/http"
	"ordersadmin.com/app/internal/http/flash"
	"ordersadmin.com/app/internal/modules/orders"
	"ordersadmin.com/app/internal/orderapi"
	"ordersadmin.com/app/internal/session"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	sessions, err := newSessionLookup(cfg)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	var pub audit.Publisher = audit.NewLogPublisher(logger)
	if cfg.KafkaEnabled() {
		kp, err := audit.NewKafkaPublisher(cfg.AuditKafkaBrokers, cfg.AuditKafkaTopic)
		if err != nil {
			log.Fatalf("audit publisher: %v", err)
		}
		defer kp.Close()
		pub = kp
	}

	api := orderapi.New(orderapi.Config{
		BaseURL:      cfg.OrderAPIBaseURL,
		Timeout:      cfg.OrderAPITimeout,
		ServiceToken: cfg.OrderAPIServiceToken,
	}, logger)

	r := apphttp.NewRouter(apphttp.RouterDeps{
		Logger:        logger,
		Console:       orders.NewConsole(api, pub, logger),
		Flash:         flash.NewCodec([]byte(cfg.FlashSecret), cfg.FlashCookie, cfg.CookieSecure),
		Sessions:      sessions,
		CSRFKey:       []byte(cfg.CSRFKey),
		CookieSecure:  cfg.CookieSecure,
		LoginPath:     cfg.LoginPath,
		HomePath:      cfg.HomePath,
		DashboardPath: cfg.DashboardPath,
		BannerTTL:     cfg.BannerTTL,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http_listen", slog.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_serve_failed", slog.Any("err", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_shutdown_failed", slog.Any("err", err))
	}
}

func newSessionLookup(cfg config.Config) (session.Lookup, error) {
	if cfg.SessionStore == config.SessionStoreDB {
		db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return session.NewDBStore(db, cfg.SessionCookie), nil
	}
	return session.NewCookieStore([]byte(cfg.SessionSecret), cfg.SessionCookie), nil
}
