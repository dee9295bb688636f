package web

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"GiftStore/internal/admin"
	"GiftStore/internal/catalog"
	"GiftStore/internal/checkout"
	"GiftStore/pkg/kit"
)

const (
	readyTimeout     = 1 * time.Second
	metricsNamespace = "giftstore"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// TrustProxy takes the client address from X-Real-IP/X-Forwarded-For.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool
}

// Deps are the stores and collaborators the storefront serves. AdminGuard
// and QuoteLimiter are optional.
type Deps struct {
	Catalog  catalog.Store
	Products *admin.ProductManager
	Orders   *admin.OrderTracker
	Quoter   *checkout.Quoter
	Static   fs.FS

	AdminGuard   func(http.Handler) http.Handler
	QuoteLimiter *kit.IPRateLimiter
}

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps.Catalog, httpDeps.Log))

	r.Route("/api", func(api chi.Router) {
		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			kit.WriteError(w, r, http.StatusNotFound, "not found", nil)
		})

		as := &admin.Server{
			Catalog:  deps.Catalog,
			Products: deps.Products,
			Orders:   deps.Orders,
			Log:      httpDeps.Log,
		}
		api.Mount("/admin", as.Routes(deps.AdminGuard))

		qs := &checkout.Server{Quoter: deps.Quoter, Log: httpDeps.Log}
		quotes := qs.Routes()
		if deps.QuoteLimiter != nil {
			quotes = deps.QuoteLimiter.Middleware(quotes)
		}
		api.Mount("/quotes", quotes)

		cs := &catalog.Server{Store: deps.Catalog, Log: httpDeps.Log}
		api.Mount("/", cs.Routes())
	})

	if deps.Static != nil {
		r.Handle("/*", NewSPA(deps.Static))
	}

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	if deps.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry, metricsNamespace)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(store catalog.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
