package handlers

import (
	"net/http"

	middleware "workpulse/middlewares"
	"workpulse/models"
	service "workpulse/services"
	"workpulse/utils"
)

type TaskHandler struct {
	service service.TaskService
	system  service.SystemService
}

func NewTaskHandler(service service.TaskService, system service.SystemService) *TaskHandler {
	return &TaskHandler{service: service, system: system}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := utils.DecodeAndValidate(w, r, &task); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateTask(r.Context(), &task, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Created task "+created.Title, "task", created.ID)
	utils.HandleDataResponse(w, "Task created successfully", created, http.StatusCreated)
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.service.GetTaskByID(r.Context(), id)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Task retrieved successfully", task, http.StatusOK)
}

func (h *TaskHandler) GetTasksByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}

	tasks, err := h.service.GetTasksByProject(r.Context(), projectID, queryLimit(r))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Tasks retrieved successfully", tasks, http.StatusOK)
}

func (h *TaskHandler) GetOverdueTasks(w http.ResponseWriter, r *http.Request) {
	org, ok := orgID(w, r)
	if !ok {
		return
	}

	tasks, err := h.service.GetOverdueTasks(r.Context(), org)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Overdue tasks retrieved successfully", tasks, http.StatusOK)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var patch models.Task
	if err := utils.DecodeAndValidate(w, r, &patch); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	updated, err := h.service.UpdateTask(r.Context(), id, &patch, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Updated task "+updated.Title, "task", id)
	utils.HandleDataResponse(w, "Task updated successfully", updated, http.StatusOK)
}

type transitionRequest struct {
	Status models.TaskStatus `json:"status" validate:"required,oneof=backlog todo in-progress in-review done cancelled"`
}

func (h *TaskHandler) TransitionTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req transitionRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	task, err := h.service.TransitionTask(r.Context(), id, req.Status, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Task transitioned successfully", task, http.StatusOK)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	if err := h.service.SoftDeleteTask(r.Context(), id, username); err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Deleted task", "task", id)
	utils.HandleMessageResponse(w, "Task deleted successfully", http.StatusOK)
}

func (h *TaskHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var comment models.Comment
	if err := utils.DecodeAndValidate(w, r, &comment); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateComment(r.Context(), &comment, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Comment created successfully", created, http.StatusCreated)
}

type commentUpdateRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

func (h *TaskHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req commentUpdateRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	comment, err := h.service.UpdateCommentContent(r.Context(), id, req.Content, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Comment updated successfully", comment, http.StatusOK)
}

func (h *TaskHandler) GetCommentsByTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.service.GetCommentsByTask(r.Context(), taskID)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Comments retrieved successfully", comments, http.StatusOK)
}

func (h *TaskHandler) CreateAttachment(w http.ResponseWriter, r *http.Request) {
	var attachment models.Attachment
	if err := utils.DecodeAndValidate(w, r, &attachment); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateAttachment(r.Context(), &attachment, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Attachment created successfully", created, http.StatusCreated)
}

func (h *TaskHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAttachment(r.Context(), id); err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Deleted attachment", "attachment", id)
	utils.HandleMessageResponse(w, "Attachment deleted successfully", http.StatusOK)
}
