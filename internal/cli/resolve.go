package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the resolved backend endpoints and missing configuration",
	Run:   runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) {
	rt := loadRuntime()
	validation := rt.env.ValidateRequiredEnvVars(slog.Default())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tVALUE")
	_, _ = fmt.Fprintf(w, "public\t%s\n", rt.endpoints.Public)
	_, _ = fmt.Fprintf(w, "direct\t%s\n", rt.endpoints.Direct)
	_, _ = fmt.Fprintf(w, "fallback\t%s\n", orNone(rt.endpoints.Fallback))
	_, _ = fmt.Fprintf(w, "worker\t%s\n", orNone(rt.endpoints.Worker))
	_, _ = fmt.Fprintf(w, "functions\t%s\n", rt.endpoints.EdgeFunctionURL("", ""))
	_, _ = fmt.Fprintf(w, "routes\t%s\n", strings.Join(rt.endpoints.Bases(), ", "))
	_, _ = fmt.Fprintf(w, "missing\t%s\n", orNone(strings.Join(validation.Missing, ", ")))
	_ = w.Flush()

	if !validation.Valid {
		os.Exit(2)
	}
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
