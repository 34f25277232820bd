package handlers

import (
	"net/http"

	"github.com/teklifgo/server/pkg"
	"github.com/teklifgo/server/services"
)

// StatsHandler, dashboard ve ödeme istatistiği endpoint'leri.
type StatsHandler struct {
	statsService services.StatsService
}

// NewStatsHandler, constructor.
func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard godoc
// GET /api/statistics
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	stats, err := h.statsService.Dashboard(r.Context(), user.ID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, stats)
}

// PaymentSummary godoc
// GET /api/payments/statistics
func (h *StatsHandler) PaymentSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	summary, err := h.statsService.PaymentSummary(r.Context(), user.ID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, summary)
}
