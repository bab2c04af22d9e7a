package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/supafetch/internal/core/endpoint"
	"github.com/vietddude/supafetch/internal/infra/fetch"
)

var (
	fetchMethod   string
	fetchData     string
	fetchFunction bool
	fetchWorker   bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <path|url>",
	Short: "Send one request through the fallback fetcher",
	Long: `Paths are joined to the public base URL, or to the edge function base with --function,
or to the worker base with --worker. Absolute URLs are sent as given.`,
	Args: cobra.ExactArgs(1),
	Run:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchMethod, "method", "X", http.MethodGet, "HTTP method")
	fetchCmd.Flags().StringVarP(&fetchData, "data", "d", "", "request body")
	fetchCmd.Flags().BoolVar(&fetchFunction, "function", false, "treat the argument as an edge function name")
	fetchCmd.Flags().BoolVar(&fetchWorker, "worker", false, "treat the argument as a worker service path")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) {
	rt := loadRuntime()
	target := targetURL(rt.endpoints, args[0])

	opts := fetch.Options{Method: strings.ToUpper(fetchMethod), Header: rt.apiHeader()}
	if fetchData != "" {
		opts.Body = []byte(fetchData)
		opts.Header.Set("Content-Type", "application/json")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*rt.cfg.Fetch.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := rt.fetcher.Execute(ctx, fetch.URLString{URL: target, Options: opts})
	if err != nil {
		slog.Error("Request failed", "url", target, "error", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	slog.Info("Request completed",
		"url", resp.Request.URL.String(),
		"status", resp.StatusCode,
		"latency", time.Since(start).Round(time.Millisecond),
	)
	_, _ = io.Copy(os.Stdout, resp.Body)
	fmt.Println()
}

func targetURL(e endpoint.Endpoints, arg string) string {
	switch {
	case fetchFunction:
		name, query, _ := strings.Cut(arg, "?")
		return e.EdgeFunctionURL(name, query)
	case fetchWorker:
		return e.WorkerEndpoint(arg)
	case endpoint.IsValidAbsolute(arg):
		return arg
	default:
		return e.Public + "/" + strings.TrimLeft(arg, "/")
	}
}
