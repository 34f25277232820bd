package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/teklifgo/server/database"
)

// HealthHandler, deployment sağlık kontrolü endpoint'leri.
//
// Railway ve uptime monitörleri GET /health'i poll'lar. Response formatı
// sabittir ve APIResponse envelope'u KULLANILMAZ — dış araçlar
// {"status":"healthy","database":"connected"} bekler.
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler, constructor.
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// healthResponse, /health response gövdesi.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"` // yalnızca unhealthy durumda dolu
}

// Health godoc
// GET /health
// DB probe başarılıysa 200, değilse 503 döner.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	if err := h.db.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(healthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// Root godoc
// GET /
// API'nin ayakta olduğunu gösteren basit karşılama mesajı.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "TeklifGo API",
		"docs":    "/health",
	})
}
