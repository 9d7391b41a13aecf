package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Lixing-Zhang/food-dashboard/internal/config"
	"github.com/Lixing-Zhang/food-dashboard/internal/dashboard"
	"github.com/Lixing-Zhang/food-dashboard/internal/foodapi"
	"github.com/Lixing-Zhang/food-dashboard/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	apiURL   string
	apiKey   string
	logLevel string
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "foodctl",
	Short:         "foodctl manages the food list of a /foods backend",
	Long:          "foodctl lists, adds, edits and removes foods through the same dashboard the web server uses.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the foods API (default FOODS_API_URL)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key sent to the foods API (default FOODS_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (default FOODS_API_TIMEOUT seconds)")

	rootCmd.AddCommand(listCmd, addCmd, updateCmd, deleteCmd)
}

// withDashboard builds a dashboard against the configured API, runs the
// initial load and hands it to run
func withDashboard(cmd *cobra.Command, run func(ctx context.Context, d *dashboard.Dashboard) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	base := cfg.FoodsAPI.BaseURL
	if apiURL != "" {
		base = apiURL
	}
	key := cfg.FoodsAPI.APIKey
	if apiKey != "" {
		key = apiKey
	}
	wait := time.Duration(cfg.FoodsAPI.Timeout) * time.Second
	if timeout > 0 {
		wait = timeout
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), logLevel)
	client := foodapi.NewClient(base, foodapi.WithAPIKey(key), foodapi.WithTimeout(wait))
	d := dashboard.New(client, log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.LoadFoods(ctx); err != nil {
		return fmt.Errorf("load foods: %w", err)
	}
	return run(ctx, d)
}

func printFoods(w io.Writer, d *dashboard.Dashboard) {
	foods := d.Foods()
	if len(foods) == 0 {
		fmt.Fprintln(w, "No foods")
		return
	}
	for _, f := range foods {
		status := "available"
		if !f.Available {
			status = "unavailable"
		}
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\n", f.ID, f.Name, f.Price, status, f.Description)
	}
}
