package handlers

import (
	"net/http"

	middleware "workpulse/middlewares"
	"workpulse/models"
	service "workpulse/services"
	"workpulse/utils"
)

type ReviewHandler struct {
	service service.ReviewService
	system  service.SystemService
}

func NewReviewHandler(service service.ReviewService, system service.SystemService) *ReviewHandler {
	return &ReviewHandler{service: service, system: system}
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.PerformanceReview
	if err := utils.DecodeAndValidate(w, r, &review); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateReview(r.Context(), &review, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Created performance review", "performance_review", created.ID)
	utils.HandleDataResponse(w, "Review created successfully", created, http.StatusCreated)
}

func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	review, err := h.service.GetReviewByID(r.Context(), id)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Review retrieved successfully", review, http.StatusOK)
}

func (h *ReviewHandler) GetReviewsByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeId")
	if !ok {
		return
	}

	reviews, err := h.service.GetReviewsByEmployee(r.Context(), employeeID, queryLimit(r))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Reviews retrieved successfully", reviews, http.StatusOK)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var patch models.PerformanceReview
	if err := utils.DecodeAndValidate(w, r, &patch); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	updated, err := h.service.UpdateReview(r.Context(), id, &patch, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Review updated successfully", updated, http.StatusOK)
}

func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	review, err := h.service.SubmitReview(r.Context(), id, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Review submitted successfully", review, http.StatusOK)
}

func (h *ReviewHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	review, err := h.service.ApproveReview(r.Context(), id, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	recordAudit(r, h.system, "Approved performance review", "performance_review", id)
	utils.HandleDataResponse(w, "Review approved successfully", review, http.StatusOK)
}

func (h *ReviewHandler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var assessment models.SkillAssessment
	if err := utils.DecodeAndValidate(w, r, &assessment); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateAssessment(r.Context(), &assessment, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Assessment created successfully", created, http.StatusCreated)
}

func (h *ReviewHandler) GetAssessmentsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	assessments, err := h.service.GetAssessmentsByUser(r.Context(), userID, queryLimit(r))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Assessments retrieved successfully", assessments, http.StatusOK)
}

func (h *ReviewHandler) ApproveAssessment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	assessment, err := h.service.ApproveAssessment(r.Context(), id, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Assessment approved successfully", assessment, http.StatusOK)
}

func (h *ReviewHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var feedback models.Feedback
	if err := utils.DecodeAndValidate(w, r, &feedback); err != nil {
		return
	}

	username := middleware.GetUsernameFromContext(r.Context())
	created, err := h.service.CreateFeedback(r.Context(), &feedback, username)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Feedback created successfully", created, http.StatusCreated)
}

func (h *ReviewHandler) GetFeedbackForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	feedback, err := h.service.GetFeedbackForUser(r.Context(), userID, queryLimit(r))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Feedback retrieved successfully", feedback, http.StatusOK)
}
