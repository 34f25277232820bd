package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
	"github.com/teklifgo/server/services"
)

// QuotationHandler, teklif ve ödeme endpoint'leri.
type QuotationHandler struct {
	quotationService services.QuotationService
}

// NewQuotationHandler, constructor.
func NewQuotationHandler(quotationService services.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// List godoc
// GET /api/quotations
func (h *QuotationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	quotations, err := h.quotationService.List(r.Context(), user.ID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, quotations)
}

// Get godoc
// GET /api/quotations/{id}
func (h *QuotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	quotation, err := h.quotationService.Get(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, quotation)
}

// Create godoc
// POST /api/quotations
// Tutarlar sunucuda hesaplanır, client'tan gelen değerler yok sayılır.
func (h *QuotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quotation, err := h.quotationService.Create(r.Context(), user.ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, quotation)
}

// Update godoc
// PUT /api/quotations/{id}
// Kalem listesi komple değiştirilir (replace semantics).
func (h *QuotationHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quotation, err := h.quotationService.Update(r.Context(), user.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, quotation)
}

// Delete godoc
// DELETE /api/quotations/{id}
func (h *QuotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.quotationService.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "quotation deleted"})
}

// UpdatePayment godoc
// PUT /api/quotations/{id}/payment
func (h *QuotationHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.PaymentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quotation, err := h.quotationService.UpdatePayment(r.Context(), user.ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, quotation)
}

// ListByPaymentStatus godoc
// GET /api/payments/{status}
// status: unpaid | paid | partial
func (h *QuotationHandler) ListByPaymentStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	// URL segmenti "pending", veritabanındaki "unpaid" durumuna karşılık
	// gelir — frontend /api/payments/pending çağırır.
	status := r.PathValue("status")
	if status == "pending" {
		status = models.PaymentStatusUnpaid
	}

	quotations, err := h.quotationService.ListByPaymentStatus(r.Context(), user.ID, status)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, quotations)
}

// DownloadPDF godoc
// GET /api/quotations/{id}/pdf
//
// PDF binary döner — APIResponse envelope'u kullanılmaz.
// Content-Disposition ile tarayıcı indirme başlatır.
func (h *QuotationHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	filename, content, err := h.quotationService.GeneratePDF(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
