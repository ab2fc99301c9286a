package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/yottalab/membership-system/internal/api"
	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
	"github.com/yottalab/membership-system/internal/core/state"
	"github.com/yottalab/membership-system/internal/infrastructure/config"
	redisdb "github.com/yottalab/membership-system/internal/infrastructure/db/redis"
	"github.com/yottalab/membership-system/internal/infrastructure/db/sqlite"
	"github.com/yottalab/membership-system/internal/infrastructure/mail"
	"github.com/yottalab/membership-system/internal/infrastructure/queue"
	"github.com/yottalab/membership-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "membership-system",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- SQLite ---
	db, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open sqlite database")
	}
	defer db.Close()

	if err := sqlite.RunMigrations(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// --- In-memory mirror ---
	window := domain.YearWindow{Start: cfg.Ledger.StartYear, Count: cfg.Ledger.Years}
	mirror := state.New(window)
	if err := rebuildMirror(ctx, db, mirror); err != nil {
		log.Fatal().Err(err).Msg("failed to build the in-memory mirror")
	}

	// --- Redis (optional) ---
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rdb.Close()
	}

	// --- Mail pipeline (optional) ---
	var mailQueue ports.MailQueue
	var dispatcher *queue.Dispatcher
	if cfg.MailConfigured() {
		mailer, err := mail.NewSMTPMailer(mail.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialise the smtp mailer")
		}
		dispatcher = queue.NewDispatcher(0, mailer, log)
		dispatcher.Start(ctx)
		mailQueue = dispatcher
	} else {
		log.Warn().Msg("mail is not configured; the contact form will reject submissions")
	}

	e := api.NewRouter(cfg, db, rdb, mirror, mailQueue, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("membership system started")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	// Drain pending mail before the worker context is cancelled.
	if dispatcher != nil {
		dispatcher.Stop()
	}
}

// rebuildMirror loads every account id, ledger row and member note and
// primes the in-memory mirror with them.
func rebuildMirror(ctx context.Context, db *sql.DB, mirror *state.Mirror) error {
	accounts := sqlite.NewAccountRepository(db)
	users := make(map[domain.UserClass][]string, len(domain.AllClasses))
	for _, class := range domain.AllClasses {
		records, err := accounts.List(ctx, class)
		if err != nil {
			return fmt.Errorf("list %s accounts: %w", class, err)
		}
		ids := make([]string, len(records))
		for i, r := range records {
			ids[i] = r.ID
		}
		users[class] = ids
	}

	rows, err := sqlite.NewLedgerRepository(db).All(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	notes, err := sqlite.NewNoteRepository(db).All(ctx)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	mirror.Rebuild(users, rows, notes)
	return nil
}
