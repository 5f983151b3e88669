package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/handler/http/response"
)

type BillingHandler interface {
	CreateBills(w http.ResponseWriter, r *http.Request)
	ListBills(w http.ResponseWriter, r *http.Request)
	GetBill(w http.ResponseWriter, r *http.Request)
	UpdateBill(w http.ResponseWriter, r *http.Request)
	UpdateBillStatus(w http.ResponseWriter, r *http.Request)
	DeleteBill(w http.ResponseWriter, r *http.Request)
	RecalculateGroupHours(w http.ResponseWriter, r *http.Request)
}

type billingHandlerImpl struct {
	billService billing.BillService
}

func NewBillingHandler(billService billing.BillService) BillingHandler {
	return &billingHandlerImpl{billService: billService}
}

func (h *billingHandlerImpl) CreateBills(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "operationID")
	if operationID == "" {
		response.BadRequest(w, "Operation ID is required", nil)
		return
	}

	var req billing.CreateBillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.billService.CreateBills(r.Context(), operationID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bills created", result)
}

func (h *billingHandlerImpl) ListBills(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "operationID")
	if operationID == "" {
		response.BadRequest(w, "Operation ID is required", nil)
		return
	}

	result, err := h.billService.ListBills(r.Context(), operationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *billingHandlerImpl) GetBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bill ID is required", nil)
		return
	}

	result, err := h.billService.GetBill(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *billingHandlerImpl) UpdateBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bill ID is required", nil)
		return
	}

	var req billing.UpdateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.billService.UpdateBill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *billingHandlerImpl) UpdateBillStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bill ID is required", nil)
		return
	}

	var req billing.UpdateBillStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.billService.UpdateBillStatus(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill status updated", nil)
}

func (h *billingHandlerImpl) DeleteBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bill ID is required", nil)
		return
	}

	if err := h.billService.DeleteBill(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill deleted", nil)
}

func (h *billingHandlerImpl) RecalculateGroupHours(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "operationID")
	groupID := chi.URLParam(r, "groupID")
	if operationID == "" || groupID == "" {
		response.BadRequest(w, "Operation ID and group ID are required", nil)
		return
	}

	result, err := h.billService.RecalculateGroupHours(r.Context(), operationID, groupID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
