package handlers

import (
	"net/http"

	middleware "workpulse/middlewares"
	"workpulse/models"
	service "workpulse/services"
	"workpulse/utils"
)

type ProjectHandler struct {
	service service.ProjectService
	system  service.SystemService
}

func NewProjectHandler(service service.ProjectService, system service.SystemService) *ProjectHandler {
	return &ProjectHandler{service: service, system: system}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := utils.DecodeAndValidate(w, r, &project); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateProject(r.Context(), &project, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Created project "+created.Title, "project", created.ID)
	utils.HandleDataResponse(w, "Project created successfully", created, http.StatusCreated)
}

func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	org, ok := orgID(w, r)
	if !ok {
		return
	}

	projects, err := h.service.GetProjectsByOrganization(r.Context(), org, queryLimit(r))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Projects retrieved successfully", projects, http.StatusOK)
}

func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.service.GetProjectByID(r.Context(), id)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Project retrieved successfully", project, http.StatusOK)
}

func (h *ProjectHandler) GetOverdueProjects(w http.ResponseWriter, r *http.Request) {
	org, ok := orgID(w, r)
	if !ok {
		return
	}

	projects, err := h.service.GetOverdueProjects(r.Context(), org)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Overdue projects retrieved successfully", projects, http.StatusOK)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var patch models.Project
	if err := utils.DecodeAndValidate(w, r, &patch); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	updated, err := h.service.UpdateProject(r.Context(), id, &patch, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Updated project "+updated.Title, "project", id)
	utils.HandleDataResponse(w, "Project updated successfully", updated, http.StatusOK)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	if err := h.service.SoftDeleteProject(r.Context(), id, username); err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Deleted project", "project", id)
	utils.HandleMessageResponse(w, "Project deleted successfully", http.StatusOK)
}

func (h *ProjectHandler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var milestone models.Milestone
	if err := utils.DecodeAndValidate(w, r, &milestone); err != nil {
		return
	}
	milestone.ProjectID = projectID

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateMilestone(r.Context(), &milestone, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Milestone created successfully", created, http.StatusCreated)
}

func (h *ProjectHandler) GetMilestones(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	milestones, err := h.service.GetMilestonesByProject(r.Context(), projectID)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Milestones retrieved successfully", milestones, http.StatusOK)
}

func (h *ProjectHandler) CompleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "milestoneId")
	if !ok {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	milestone, err := h.service.CompleteMilestone(r.Context(), id, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Milestone completed successfully", milestone, http.StatusOK)
}
