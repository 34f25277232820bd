package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/teklifgo/server/config"
	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg/ratelimit"
	"github.com/teklifgo/server/repository/testutil"
	"github.com/teklifgo/server/ws"
)

// testServer, gerçek wire-up ile (initRepositories → initServices →
// initHandlers → initRoutes) çalışan bir mux kurar. Route seviyesindeki
// davranışlar — path eşleme, middleware zinciri, envelope — burada test edilir.
type testServer struct {
	mux   *http.ServeMux
	repos *Repositories
	token string
	user  models.User
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewTestDB(t)
	repos := initRepositories(db.Conn)

	hub := ws.NewHub()
	go hub.Run()
	t.Cleanup(hub.Shutdown)

	cfg := &config.Config{
		JWT:      config.JWTConfig{Secret: "test-secret", ExpiryDays: 7},
		Reminder: config.ReminderConfig{CheckIntervalSeconds: 3600},
	}
	svcs := initServices(repos, hub, cfg)
	t.Cleanup(svcs.Stats.Close)

	limiter := ratelimit.NewLoginRateLimiter(5, 2*time.Minute)
	t.Cleanup(limiter.Close)

	h := initHandlers(svcs, db, limiter, hub)
	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Auth, repos.User)

	result, err := svcs.Auth.Register(context.Background(), &models.RegisterRequest{
		Email:    "routes@example.com",
		Password: "secret123",
		FullName: "Route Tester",
	})
	require.NoError(t, err)

	return &testServer{
		mux:   mux,
		repos: repos,
		token: result.AccessToken,
		user:  result.User,
	}
}

func (ts *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest("GET", path, nil)
	r.Header.Set("Authorization", "Bearer "+ts.token)
	w := httptest.NewRecorder()
	ts.mux.ServeHTTP(w, r)
	return w
}

// seedQuotations, ödeme durumu farklı iki teklif yazar.
func (ts *testServer) seedQuotations(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	customer := &models.Customer{UserID: ts.user.ID, Name: "Müşteri"}
	require.NoError(t, ts.repos.Customer.Create(ctx, customer))

	for _, q := range []struct {
		number string
		status string
	}{
		{"Q-1", models.PaymentStatusUnpaid},
		{"Q-2", models.PaymentStatusPaid},
	} {
		require.NoError(t, ts.repos.Quotation.Create(ctx, &models.Quotation{
			UserID:          ts.user.ID,
			CustomerID:      customer.ID,
			QuotationNumber: q.number,
			Subtotal:        100,
			Total:           100,
			PaymentStatus:   q.status,
			Items: []models.QuotationItem{
				{ProductName: "Kalem", Quantity: 1, Unit: "adet", UnitPrice: 100, Total: 100},
			},
		}))
	}
}

// listResponse, teklif listesi endpoint'lerinin envelope'u.
type listResponse struct {
	Success bool               `json:"success"`
	Data    []models.Quotation `json:"data"`
}

func TestRoutes_PaymentsByStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.seedQuotations(t)

	// Frontend'in kullandığı path "pending"dir — "unpaid" durumuna map'lenir
	w := ts.get(t, "/api/payments/pending")
	require.Equal(t, http.StatusOK, w.Code)

	var pending listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	require.True(t, pending.Success)
	require.Len(t, pending.Data, 1)
	require.Equal(t, "Q-1", pending.Data[0].QuotationNumber)
	require.Equal(t, models.PaymentStatusUnpaid, pending.Data[0].PaymentStatus)

	w = ts.get(t, "/api/payments/paid")
	require.Equal(t, http.StatusOK, w.Code)

	var paid listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paid))
	require.Len(t, paid.Data, 1)
	require.Equal(t, "Q-2", paid.Data[0].QuotationNumber)

	// Tanımsız durum 400 döner
	w = ts.get(t, "/api/payments/bogus")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_PaymentsStatisticsNotShadowed(t *testing.T) {
	ts := newTestServer(t)
	ts.seedQuotations(t)

	// Literal path parametrik {status}'a kaptırılmaz
	w := ts.get(t, "/api/payments/statistics")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "total_expected")
}

func TestRoutes_RootAndUnknownPath(t *testing.T) {
	ts := newTestServer(t)

	// Root banner yalnızca "/" için
	w := httptest.NewRecorder()
	ts.mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "TeklifGo API")

	// Bilinmeyen path banner'a düşmez
	w = httptest.NewRecorder()
	ts.mux.ServeHTTP(w, httptest.NewRequest("GET", "/no-such-endpoint", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_AuthRequired(t *testing.T) {
	ts := newTestServer(t)

	r := httptest.NewRequest("GET", "/api/payments/pending", nil)
	w := httptest.NewRecorder()
	ts.mux.ServeHTTP(w, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
