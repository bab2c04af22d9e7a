package cli

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/supafetch/internal/core/config"
	"github.com/vietddude/supafetch/internal/core/endpoint"
	"github.com/vietddude/supafetch/internal/infra/fetch"
)

var (
	cfgPath string
	envFile string
	isDebug bool
)

// runtime is built once by loadRuntime and shared by every command.
type runtime struct {
	cfg       *config.AppConfig
	env       config.Env
	endpoints endpoint.Endpoints
	fetcher   *fetch.Fetcher
}

var rootCmd = &cobra.Command{
	Use:   "routecheck",
	Short: "Inspect and exercise backend routing",
	Long:  `routecheck resolves the configured backend base URLs and sends requests through the fallback fetcher.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file, defaults apply when absent")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
}

func loadRuntime() *runtime {
	_ = godotenv.Load(envFile)

	// Load Configuration
	cfg, err := config.LoadOptional(cfgPath)
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup logging
	slogLevel := slog.LevelInfo
	if isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}

	if cfg.Logging.Format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})))
	} else {
		stylelog.InitDefault(&tint.Options{
			Level:      slogLevel,
			TimeFormat: time.RFC3339,
		})
	}

	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("Failed to read environment", "error", err)
		os.Exit(1)
	}

	logger := slog.Default()
	endpoints := env.Endpoints(logger)
	client := &http.Client{Timeout: cfg.Fetch.Timeout}

	return &runtime{
		cfg:       cfg,
		env:       env,
		endpoints: endpoints,
		fetcher:   fetch.New(client, endpoints, fetch.Config{RetryDelay: cfg.Fetch.RetryDelay}, logger),
	}
}

// apiHeader returns the headers every backend request carries.
func (r *runtime) apiHeader() http.Header {
	h := http.Header{}
	if config.IsConfigured(r.env.APIKey) {
		h.Set("apikey", r.env.APIKey)
		h.Set("Authorization", "Bearer "+r.env.APIKey)
	}
	return h
}
