package handlers

import (
	"net/http"

	middleware "workpulse/middlewares"
	"workpulse/models"
	service "workpulse/services"
	"workpulse/utils"
)

type OKRHandler struct {
	service service.OKRService
	system  service.SystemService
}

func NewOKRHandler(service service.OKRService, system service.SystemService) *OKRHandler {
	return &OKRHandler{service: service, system: system}
}

func (h *OKRHandler) CreateOKR(w http.ResponseWriter, r *http.Request) {
	var okr models.OKR
	if err := utils.DecodeAndValidate(w, r, &okr); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateOKR(r.Context(), &okr, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Created OKR "+created.Objective, "okr", created.ID)
	utils.HandleDataResponse(w, "OKR created successfully", created, http.StatusCreated)
}

func (h *OKRHandler) GetOKRs(w http.ResponseWriter, r *http.Request) {
	org, ok := orgID(w, r)
	if !ok {
		return
	}

	okrs, err := h.service.GetOKRsByOrganization(r.Context(), org, queryLimit(r))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "OKRs retrieved successfully", okrs, http.StatusOK)
}

func (h *OKRHandler) GetOKRByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	okr, err := h.service.GetOKRByID(r.Context(), id)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "OKR retrieved successfully", okr, http.StatusOK)
}

func (h *OKRHandler) GetOKRsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	okrs, err := h.service.GetOKRsByUser(r.Context(), userID, queryLimit(r))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "OKRs retrieved successfully", okrs, http.StatusOK)
}

func (h *OKRHandler) UpdateOKR(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var patch models.OKR
	if err := utils.DecodeAndValidate(w, r, &patch); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	updated, err := h.service.UpdateOKR(r.Context(), id, &patch, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Updated OKR "+updated.Objective, "okr", id)
	utils.HandleDataResponse(w, "OKR updated successfully", updated, http.StatusOK)
}

type keyResultsRequest struct {
	KeyResults []models.KeyResult `json:"key_results" validate:"required,dive"`
}

func (h *OKRHandler) UpdateKeyResults(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req keyResultsRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	okr, err := h.service.UpdateKeyResults(r.Context(), id, req.KeyResults, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Key results updated successfully", okr, http.StatusOK)
}

func (h *OKRHandler) DeleteOKR(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteOKR(r.Context(), id); err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Deleted OKR", "okr", id)
	utils.HandleMessageResponse(w, "OKR deleted successfully", http.StatusOK)
}
