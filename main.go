package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/alumni-portal/auth"
	"github.com/danielhkuo/alumni-portal/cliparse"
	"github.com/danielhkuo/alumni-portal/db"
	"github.com/danielhkuo/alumni-portal/logging"
	"github.com/danielhkuo/alumni-portal/router"
	"github.com/danielhkuo/alumni-portal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing flags:", err)
		os.Exit(1)
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintln(os.Stderr, "Error configuring logging:", err)
		os.Exit(1)
	}

	if cfg.IssueToken != "" {
		if err := issueToken(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to issue token")
		}
		return
	}

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid database type")
	}

	ctx := context.Background()

	// The store must be reachable before anything else runs
	conn, err := db.Open(ctx, dialect, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Str("database", string(dialect)).Msg("database connection failed")
	}
	defer conn.Close()

	applied, err := db.Migrate(ctx, conn, dialect)
	if err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}
	log.Info().Int("applied", applied).Msg("database schema ready")

	if !cfg.SkipSeed {
		if _, err := db.Seed(ctx, conn, dialect); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	st := store.New(conn, dialect)

	server := http.Server{
		Handler:           router.NewRouter(st, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			server.Close()
		}
	}()

	log.Info().Int("port", cfg.Port).Str("database", string(dialect)).Msg("listening")
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server closed")
	} else {
		log.Info().Msg("server closed")
	}
}

// issueToken prints the admin key or an alumni token for local testing
func issueToken(cfg cliparse.Config) error {
	if cfg.IssueToken == "admin" {
		fmt.Printf("%s: %s\n", auth.HeaderAdminKey, auth.GenerateAdminKey(cfg.SessionSecret))
		return nil
	}

	id, err := auth.ParseAlumniID(cfg.IssueToken)
	if err != nil {
		return fmt.Errorf("-issue-token wants 'admin' or an alumni id: %w", err)
	}
	fmt.Printf("%s: %d\n%s: %s\n",
		auth.HeaderAlumniID, id,
		auth.HeaderAlumniToken, auth.GenerateAlumniToken(id, cfg.SessionSecret))
	return nil
}
