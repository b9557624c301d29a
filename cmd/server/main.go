/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the payroll hours derivation server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Configure the zerolog root logger
  3. Initialize SQLite store
  4. Wire the derivation engine and API handler
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: 8080)
  -db         SQLite database path (default: hours.db)
              Use ":memory:" for an in-memory database
  -tolerance  Classification margin in minutes around expected hours
  -pretty     Human-readable console logging instead of JSON

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/hours.db"

  # Run with in-memory database and console logs
  ./server -db=":memory:" -pretty

  # Widen the tolerance window to one hour
  ./server -tolerance=60

SEE ALSO:
  - api/server.go: Router configuration
  - payroll/engine.go: Derivation orchestrator
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/sigrh/hours-engine/api"
	"github.com/sigrh/hours-engine/payroll"
	"github.com/sigrh/hours-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "hours.db", "SQLite database path")
	tolerance := flag.Int("tolerance", payroll.DefaultToleranceMinutes, "classification margin in minutes")
	pretty := flag.Bool("pretty", false, "human-readable console logging")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *pretty {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer store.Close()

	// Wire the engine. The SQLite store serves as employee directory,
	// clock-event source, and transactional hours store.
	engine := payroll.NewEngine(store, store, store,
		payroll.WithPolicy(payroll.NewTolerancePolicy(*tolerance)),
		payroll.WithLogger(log),
	)

	handler := api.NewHandler(store, engine, log)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", *port).Str("db", *dbPath).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
