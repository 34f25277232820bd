package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teklifgo/server/handlers"
	"github.com/teklifgo/server/repository/testutil"
)

func TestHealth_Connected(t *testing.T) {
	db := testutil.NewTestDB(t)
	h := handlers.NewHealthHandler(db)

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"status":"healthy","database":"connected"}`, w.Body.String())
}

func TestHealth_Disconnected(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, db.Close())
	h := handlers.NewHealthHandler(db)

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, 503, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "unhealthy", body["status"])
	require.Equal(t, "disconnected", body["database"])
	require.NotEmpty(t, body["error"])
}

func TestRoot(t *testing.T) {
	db := testutil.NewTestDB(t)
	h := handlers.NewHealthHandler(db)

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "TeklifGo API")
}
