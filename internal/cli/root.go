// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"moviedb/internal/api"
	"moviedb/internal/api/handlers"
	"moviedb/internal/config"
	"moviedb/internal/logging"
	"moviedb/internal/repository/postgres"
	"moviedb/internal/services"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile     string
	logLevel    string
	port        int
	databaseURL string
	environment string
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "moviedb",
	Short: "MovieDB Catalog API",
	Long:  `A read-only HTTP query endpoint over a relational catalog of movie and series files.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: MDB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: MDB_LOG_LEVEL)")

	// Server-specific flags
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: MDB_PORT)")
	RootCmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection string. (Env: MDB_DATABASE_URL or DATABASE_URL)")
	RootCmd.Flags().StringVar(&environment, "environment", "", "Deployment mode, 'development' or 'production'. (Env: MDB_ENVIRONMENT)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("MDB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config) {
	// Helper to get string from env or fallback
	getEnv := func(key string) string {
		return os.Getenv(key)
	}

	// --- 1. Environment Variables ---
	if v := getEnv("MDB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := getEnv("MDB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("MDB_DATABASE_URL"); v != "" {
		c.Database.URL = v
	} else if v := getEnv("DATABASE_URL"); v != "" && c.Database.URL == "" {
		c.Database.URL = v
	}
	if v := getEnv("MDB_ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := getEnv("MDB_MAX_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Database.MaxConns = n
		}
	}

	// --- 2. CLI Flags (Take precedence) ---
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if databaseURL != "" {
		c.Database.URL = databaseURL
	}
	if environment != "" {
		c.Environment = environment
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	// The pool is process-wide: constructed once here, torn down when the
	// process exits.
	repo, err := postgres.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// Service Initialization
	infoService := services.NewInfoService(Version, cfg.Environment, StartTime)
	movieService := services.NewCatalogService(repo, cfg)

	h := handlers.NewHandlers(movieService, infoService, repo, cfg)

	r := api.SetupRouter(h)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	// Create a channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Run server in a goroutine
	go func() {
		logging.Log.Infof("Server starting on %s (environment: %s)", serverAddr, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Block until a signal is received
	<-stop
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete (30 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown the HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
