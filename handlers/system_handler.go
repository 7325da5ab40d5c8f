package handlers

import (
	"net/http"

	middleware "workpulse/middlewares"
	"workpulse/models"
	service "workpulse/services"
	"workpulse/utils"
)

type SystemHandler struct {
	service service.SystemService
}

func NewSystemHandler(service service.SystemService) *SystemHandler {
	return &SystemHandler{service: service}
}

func (h *SystemHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	org, ok := orgID(w, r)
	if !ok {
		return
	}

	logs, err := h.service.GetAuditLogs(r.Context(), org, queryLimit(r))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Audit logs retrieved successfully", logs, http.StatusOK)
}

func (h *SystemHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	notifications, err := h.service.GetNotificationsByUser(r.Context(), userID, queryLimit(r))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Notifications retrieved successfully", notifications, http.StatusOK)
}

func (h *SystemHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	n, err := h.service.MarkNotificationRead(r.Context(), id, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Notification marked read", n, http.StatusOK)
}

func (h *SystemHandler) CreateAIReport(w http.ResponseWriter, r *http.Request) {
	var report models.AIReport
	if err := utils.DecodeAndValidate(w, r, &report); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateAIReport(r.Context(), &report, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "AI report created successfully", created, http.StatusCreated)
}

func (h *SystemHandler) GetActiveAIReports(w http.ResponseWriter, r *http.Request) {
	org, ok := orgID(w, r)
	if !ok {
		return
	}

	reports, err := h.service.GetActiveAIReports(r.Context(), org)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "AI reports retrieved successfully", reports, http.StatusOK)
}

func (h *SystemHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := utils.DecodeAndValidate(w, r, &settings); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	saved, err := h.service.SaveSettings(r.Context(), &settings, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Settings saved successfully", saved, http.StatusOK)
}

func (h *SystemHandler) GetSettingsForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	settings, err := h.service.GetSettingsForUser(r.Context(), userID)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Settings retrieved successfully", settings, http.StatusOK)
}
