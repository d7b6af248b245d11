package commands

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"hexbot-palette/internal/api"
	"hexbot-palette/internal/metrics"
	"hexbot-palette/internal/ui"
)

func serveCmd() *cobra.Command {
	var skipFetch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the metrics endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appCtx.Config

			ui.LogSection("Palette API " + Version)
			ui.LogGroup("Configuration")
			if cfg.Env.IsDevelopment() {
				ui.LogGroupItem("Environment", ui.Warn("DEVELOPMENT"))
			} else {
				ui.LogGroupItem("Environment", ui.Success("PRODUCTION"))
			}
			ui.LogGroupItem("Store", cfg.Store+" ("+cfg.Home+")")
			ui.LogGroupItem("Saved colours", strconv.Itoa(appCtx.Palette.Len()))
			ui.LogGroupItem("Hexbot", cfg.HexbotURL)
			if cfg.APIKeyHash == "" {
				ui.LogGroupItem("API key", ui.Warn("disabled"))
			} else {
				ui.LogGroupItem("API key", "required")
			}
			ui.LogGroupItem("Rate limit", strconv.Itoa(cfg.RateLimitRPM)+" rpm")
			ui.LogGroupEnd()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if !skipFetch {
				fetchCtx, fetchCancel := context.WithTimeout(ctx, cfg.HexbotTimeout())
				if v, err := appCtx.Session.Refresh(fetchCtx); err == nil {
					ui.LogStatus("info", "Initial base colour: "+v.Base)
				}
				fetchCancel()
			}

			m := metrics.NewServer(cfg.MetricsListen)
			m.Start()
			ui.LogStatus("info", "Metrics: http://localhost"+cfg.MetricsListen+"/metrics")

			srv := api.NewServer(cfg.APIListen, api.NewRouter(appCtx.Session, api.Options{
				KeyHash:       cfg.APIKeyHash,
				RateLimitRPM:  cfg.RateLimitRPM,
				AllowedOrigin: cfg.AllowedOrigin,
			}))
			srv.Start()
			ui.LogStatus("success", "API: http://localhost"+srv.Addr()+"/api/v1")

			<-ctx.Done()
			ui.LogGracefulShutdown()

			shutdownCtx := context.Background()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				ui.LogStatus("error", "API shutdown: "+err.Error())
			}
			if err := m.Shutdown(shutdownCtx); err != nil {
				ui.LogStatus("error", "Metrics shutdown: "+err.Error())
			}
			ui.PrintFooter("Servers stopped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipFetch, "no-fetch", false, "start without fetching an initial base colour")
	return cmd
}
