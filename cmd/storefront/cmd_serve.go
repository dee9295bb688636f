package main

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"GiftStore/internal/admin"
	"GiftStore/internal/auth"
	"GiftStore/internal/catalog"
	"GiftStore/internal/checkout"
	"GiftStore/internal/config"
	"GiftStore/internal/web"
	"GiftStore/pkg/kit"
)

var (
	servePort      int
	serveStaticDir string
)

// storefront serve: run the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the bundle and the /api surface",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if cmd.Flags().Changed("static-dir") {
			cfg.Server.StaticDir = serveStaticDir
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log := kit.NewLogger(service, cfg.Logger.Level)
		defer func() { _ = log.Sync() }()

		if _, err := os.Stat(cfg.Server.StaticDir); err != nil {
			log.Warn("static dir unavailable; only /api will respond",
				zap.String("dir", cfg.Server.StaticDir), zap.Error(err))
		}

		h, err := newHandler(cfg, log, os.DirFS(cfg.Server.StaticDir))
		if err != nil {
			return err
		}

		log.Info("storefront configured",
			zap.String("static_dir", cfg.Server.StaticDir),
			zap.Bool("admin_guard", cfg.AdminGuardEnabled()),
			zap.Int("quote_rate_limit", cfg.Quotes.RateLimit),
			zap.Bool("trust_proxy", cfg.Server.TrustProxy),
		)
		return kit.RunHTTPServer(cmd.Context(), cfg.Server.Address(), h, log)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 5000, "listen port (overrides PORT)")
	serveCmd.Flags().StringVar(&serveStaticDir, "static-dir", "client/dist", "bundle directory (overrides STATIC_DIR)")
}

// newHandler wires the stores, metrics and guards into the storefront handler.
func newHandler(cfg *config.Config, log *zap.Logger, static fs.FS) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}

	metrics := admin.NewMetrics(reg)
	notifier := admin.LogNotifier{Log: log}

	cat := catalog.NewStore()
	products := admin.NewProductManager(notifier, metrics)
	orders := admin.NewOrderTracker(admin.SeedOrders(), notifier, metrics)
	admin.RegisterOrderGauges(reg, orders)

	deps := web.Deps{
		Catalog:  cat,
		Products: products,
		Orders:   orders,
		Quoter:   checkout.NewQuoter(cat),
		Static:   static,
	}
	if cfg.Quotes.RateLimit > 0 {
		deps.QuoteLimiter = kit.NewIPRateLimiter(cfg.Quotes.RateLimit, cfg.Quotes.RateWindow)
	}
	if cfg.AdminGuardEnabled() {
		deps.AdminGuard = auth.RequireRole(auth.NewTokenMaker(cfg.Admin.JWTSecret), auth.RoleAdmin)
	}

	return web.NewHandler(deps, web.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
		TrustProxy:     cfg.Server.TrustProxy,
	}), nil
}
