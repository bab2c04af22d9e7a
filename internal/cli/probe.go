package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/supafetch/internal/probe"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Continuously probe the backend route and serve health and metrics",
	Run:   runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) {
	rt := loadRuntime()
	rt.env.ValidateRequiredEnvVars(slog.Default())

	url := rt.endpoints.Public + "/" + strings.TrimLeft(rt.cfg.Probe.Path, "/")
	monitor := probe.NewMonitor(rt.fetcher, url, rt.apiHeader(), slog.Default())
	server := probe.NewServer(monitor, rt.cfg.Probe.Port)

	// Setup Context with Cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle OS Signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go monitor.Run(ctx, rt.cfg.Probe.Interval)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Health server failed", "error", err)
			cancel()
		}
	}()
	slog.Info("Probe started", "url", url, "port", rt.cfg.Probe.Port, "interval", rt.cfg.Probe.Interval)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
	case <-ctx.Done():
	}
	cancel()

	// Graceful Shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		slog.Error("Error during shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Probe stopped gracefully")
}
