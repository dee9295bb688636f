package web_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"GiftStore/internal/admin"
	"GiftStore/internal/auth"
	"GiftStore/internal/catalog"
	"GiftStore/internal/checkout"
	"GiftStore/internal/web"
	"GiftStore/pkg/kit"
)

const jwtSecret = "test-secret-test-secret-test-sec"

type fixture struct {
	ts       *httptest.Server
	products *admin.ProductManager
	orders   *admin.OrderTracker
	tokens   *auth.TokenMaker
}

type fixtureOpts struct {
	guard      bool
	trustProxy bool
}

func newStorefrontTS(t *testing.T, opts fixtureOpts) fixture {
	t.Helper()

	log := zap.NewNop()
	reg := prometheus.NewRegistry()
	m := admin.NewMetrics(reg)
	notifier := admin.LogNotifier{Log: log}

	cat := catalog.NewStore()
	f := fixture{
		products: admin.NewProductManager(notifier, m),
		orders:   admin.NewOrderTracker(admin.SeedOrders(), notifier, m),
		tokens:   auth.NewTokenMaker(jwtSecret),
	}

	deps := web.Deps{
		Catalog:      cat,
		Products:     f.products,
		Orders:       f.orders,
		Quoter:       checkout.NewQuoter(cat),
		QuoteLimiter: kit.NewIPRateLimiter(3, time.Minute),
		Static: fstest.MapFS{
			"index.html":      {Data: []byte("<html>storefront</html>")},
			"placeholder.svg": {Data: []byte("<svg/>")},
		},
	}
	if opts.guard {
		deps.AdminGuard = auth.RequireRole(f.tokens, auth.RoleAdmin)
	}

	h := web.NewHandler(deps, web.HTTPDeps{
		Log:            log,
		Service:        "storefront",
		Registry:       reg,
		MetricsEnabled: true,
		MetricsToken:   "metrics-token",
		TrustProxy:     opts.trustProxy,
	})

	f.ts = httptest.NewServer(h)
	t.Cleanup(f.ts.Close)
	return f
}

func doJSON(t *testing.T, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestStorefront_HappyPath(t *testing.T) {
	f := newStorefrontTS(t, fixtureOpts{})
	base := f.ts.URL

	resp, raw := doJSON(t, http.MethodGet, base+"/api/products?featured=true", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var featured []catalog.Product
	require.NoError(t, json.Unmarshal(raw, &featured))
	assert.Len(t, featured, 4)

	resp, raw = doJSON(t, http.MethodGet, base+"/api/products/netflix", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var d catalog.Detail
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.Equal(t, []int64{15, 25, 50, 100}, d.AvailableAmounts)

	resp, raw = doJSON(t, http.MethodPost, base+"/api/quotes", map[string]any{
		"productId": "netflix", "presetAmount": 25, "quantity": 2,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var q checkout.Quote
	require.NoError(t, json.Unmarshal(raw, &q))
	assert.Equal(t, int64(50), q.Total)

	resp, raw = doJSON(t, http.MethodPost, base+"/api/admin/products", map[string]any{
		"name": "Test Card", "category": "Gaming", "description": "x",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	resp, raw = doJSON(t, http.MethodPatch, base+"/api/admin/orders/ORD-002", map[string]any{"status": "cancelled"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	resp, raw = doJSON(t, http.MethodGet, base+"/api/admin/stats", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var st admin.Stats
	require.NoError(t, json.Unmarshal(raw, &st))
	assert.Equal(t, admin.Stats{TotalProducts: 19, TotalOrders: 3, Revenue: 145, Customers: 3}, st)

	_, ok := f.products.Get(t.Context(), "test-card")
	assert.True(t, ok)
	o, ok := f.orders.Get(t.Context(), "ORD-002")
	require.True(t, ok)
	assert.Equal(t, admin.StatusCancelled, o.Status)
}

func TestStorefront_SPAFallbackAndAPINotFound(t *testing.T) {
	f := newStorefrontTS(t, fixtureOpts{})

	for _, p := range []string{"/", "/admin", "/product/netflix", "/product/unknown"} {
		resp, raw := doJSON(t, http.MethodGet, f.ts.URL+p, nil, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
		assert.Equal(t, "<html>storefront</html>", string(raw), p)
	}

	resp, raw := doJSON(t, http.MethodGet, f.ts.URL+"/placeholder.svg", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<svg/>", string(raw))

	for _, p := range []string{"/api/nope", "/api/admin/nope", "/api"} {
		resp, raw = doJSON(t, http.MethodGet, f.ts.URL+p, nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, p)
		assert.Contains(t, resp.Header.Get("Content-Type"), "application/json", p)
		assert.Contains(t, string(raw), `"not found"`, p)
	}
}

func TestStorefront_AdminGuard(t *testing.T) {
	f := newStorefrontTS(t, fixtureOpts{guard: true})
	url := f.ts.URL + "/api/admin/products"
	body := map[string]any{"name": "Guarded", "category": "Gaming", "description": "x"}

	resp, _ := doJSON(t, http.MethodPost, url, body, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, f.products.Count())

	tok, err := f.tokens.New("ops", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)

	resp, raw := doJSON(t, http.MethodPost, url, body, map[string]string{"Authorization": "Bearer " + tok})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	assert.Equal(t, 1, f.products.Count())

	resp, _ = doJSON(t, http.MethodGet, url, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "reads stay open")
}

func TestStorefront_QuoteRateLimit(t *testing.T) {
	f := newStorefrontTS(t, fixtureOpts{})
	body := map[string]any{"productId": "steam", "presetAmount": 10}

	for i := 0; i < 3; i++ {
		resp, _ := doJSON(t, http.MethodPost, f.ts.URL+"/api/quotes", body, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp, _ := doJSON(t, http.MethodPost, f.ts.URL+"/api/quotes", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestStorefront_QuoteRateLimit_ForwardedFor(t *testing.T) {
	body := map[string]any{"productId": "steam", "presetAmount": 10}

	t.Run("untrusted headers share the peer limit", func(t *testing.T) {
		f := newStorefrontTS(t, fixtureOpts{})

		limited := 0
		for i := 0; i < 10; i++ {
			xff := map[string]string{"X-Forwarded-For": fmt.Sprintf("203.0.113.%d", i)}
			resp, _ := doJSON(t, http.MethodPost, f.ts.URL+"/api/quotes", body, xff)
			if resp.StatusCode == http.StatusTooManyRequests {
				limited++
			}
		}
		assert.Equal(t, 7, limited)
	})

	t.Run("trusted proxy limits per forwarded client", func(t *testing.T) {
		f := newStorefrontTS(t, fixtureOpts{trustProxy: true})

		for i := 0; i < 10; i++ {
			xff := map[string]string{"X-Forwarded-For": fmt.Sprintf("203.0.113.%d", i)}
			resp, _ := doJSON(t, http.MethodPost, f.ts.URL+"/api/quotes", body, xff)
			require.Equal(t, http.StatusOK, resp.StatusCode)
		}
	})
}

func TestStorefront_HealthAndMetrics(t *testing.T) {
	f := newStorefrontTS(t, fixtureOpts{})

	resp, _ := doJSON(t, http.MethodGet, f.ts.URL+"/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodGet, f.ts.URL+"/readyz", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, _ = doJSON(t, http.MethodPost, f.ts.URL+"/api/admin/products", map[string]any{"name": "M", "category": "c", "description": "d"}, nil)

	resp, _ = doJSON(t, http.MethodGet, f.ts.URL+"/metrics", nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, raw := doJSON(t, http.MethodGet, f.ts.URL+"/metrics", nil, map[string]string{"Authorization": "Bearer metrics-token"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	text := string(raw)
	assert.True(t, strings.Contains(text, "http_requests_total"))
	assert.True(t, strings.Contains(text, "giftstore_admin_products_added_total 1"))
	assert.True(t, strings.Contains(text, `path="/healthz"`))
}
