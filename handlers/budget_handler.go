package handlers

import (
	"net/http"

	middleware "workpulse/middlewares"
	"workpulse/models"
	service "workpulse/services"
	"workpulse/utils"
)

type BudgetHandler struct {
	service service.BudgetService
	system  service.SystemService
}

func NewBudgetHandler(service service.BudgetService, system service.SystemService) *BudgetHandler {
	return &BudgetHandler{service: service, system: system}
}

func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var budget models.Budget
	if err := utils.DecodeAndValidate(w, r, &budget); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateBudget(r.Context(), &budget, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Created budget", "budget", created.ID)
	utils.HandleDataResponse(w, "Budget created successfully", created, http.StatusCreated)
}

func (h *BudgetHandler) GetBudgetByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}

	budget, err := h.service.GetBudgetByProject(r.Context(), projectID)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Budget retrieved successfully", budget, http.StatusOK)
}

func (h *BudgetHandler) PostTransaction(w http.ResponseWriter, r *http.Request) {
	var tx models.BudgetTransaction
	if err := utils.DecodeAndValidate(w, r, &tx); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.PostTransaction(r.Context(), &tx, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Created budget transaction", "budget_transaction", created.ID)
	utils.HandleDataResponse(w, "Transaction posted successfully", created, http.StatusCreated)
}

func (h *BudgetHandler) GetTransactionsByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}

	txs, err := h.service.GetTransactionsByProject(r.Context(), projectID, queryLimit(r))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Transactions retrieved successfully", txs, http.StatusOK)
}

func (h *BudgetHandler) ApproveTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	tx, err := h.service.ApproveTransaction(r.Context(), id, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Transaction approved successfully", tx, http.StatusOK)
}

func (h *BudgetHandler) RejectTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	tx, err := h.service.RejectTransaction(r.Context(), id, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Transaction rejected successfully", tx, http.StatusOK)
}

func (h *BudgetHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	if err := h.service.DeleteTransaction(r.Context(), id, username); err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Deleted budget transaction", "budget_transaction", id)
	utils.HandleMessageResponse(w, "Transaction deleted successfully", http.StatusOK)
}
