package routes

import (
	"net/http"

	"workpulse/handlers"
	"workpulse/middlewares"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Projects *handlers.ProjectHandler
	Tasks    *handlers.TaskHandler
	OKRs     *handlers.OKRHandler
	Reviews  *handlers.ReviewHandler
	Budgets  *handlers.BudgetHandler
	System   *handlers.SystemHandler
}

func SetupRoutes(h Handlers, jwtSecret string) *http.ServeMux {
	mux := http.NewServeMux()

	// Apply JWT middleware to all routes
	jwtMiddleware := middlewares.JWTMiddleware(jwtSecret)
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, jwtMiddleware(fn))
	}

	// Projects and milestones
	handle("POST /api/projects", h.Projects.CreateProject)
	handle("GET /api/projects", h.Projects.GetProjects)
	handle("GET /api/projects/overdue", h.Projects.GetOverdueProjects)
	handle("GET /api/projects/{id}", h.Projects.GetProjectByID)
	handle("PUT /api/projects/{id}", h.Projects.UpdateProject)
	handle("DELETE /api/projects/{id}", h.Projects.DeleteProject)
	handle("POST /api/projects/{id}/milestones", h.Projects.CreateMilestone)
	handle("GET /api/projects/{id}/milestones", h.Projects.GetMilestones)
	handle("POST /api/milestones/{milestoneId}/complete", h.Projects.CompleteMilestone)

	// Tasks, comments, attachments
	handle("POST /api/tasks", h.Tasks.CreateTask)
	handle("GET /api/tasks/overdue", h.Tasks.GetOverdueTasks)
	handle("GET /api/tasks/{id}", h.Tasks.GetTaskByID)
	handle("PUT /api/tasks/{id}", h.Tasks.UpdateTask)
	handle("POST /api/tasks/{id}/transition", h.Tasks.TransitionTask)
	handle("DELETE /api/tasks/{id}", h.Tasks.DeleteTask)
	handle("GET /api/projects/{projectId}/tasks", h.Tasks.GetTasksByProject)
	handle("POST /api/comments", h.Tasks.CreateComment)
	handle("PUT /api/comments/{id}", h.Tasks.UpdateComment)
	handle("GET /api/tasks/{id}/comments", h.Tasks.GetCommentsByTask)
	handle("POST /api/attachments", h.Tasks.CreateAttachment)
	handle("DELETE /api/attachments/{id}", h.Tasks.DeleteAttachment)

	// OKRs
	handle("POST /api/okrs", h.OKRs.CreateOKR)
	handle("GET /api/okrs", h.OKRs.GetOKRs)
	handle("GET /api/okrs/{id}", h.OKRs.GetOKRByID)
	handle("GET /api/users/{userId}/okrs", h.OKRs.GetOKRsByUser)
	handle("PUT /api/okrs/{id}", h.OKRs.UpdateOKR)
	handle("PUT /api/okrs/{id}/key-results", h.OKRs.UpdateKeyResults)
	handle("DELETE /api/okrs/{id}", h.OKRs.DeleteOKR)

	// Performance reviews, skill assessments, feedback
	handle("POST /api/reviews", h.Reviews.CreateReview)
	handle("GET /api/reviews/{id}", h.Reviews.GetReviewByID)
	handle("GET /api/employees/{employeeId}/reviews", h.Reviews.GetReviewsByEmployee)
	handle("PUT /api/reviews/{id}", h.Reviews.UpdateReview)
	handle("POST /api/reviews/{id}/submit", h.Reviews.SubmitReview)
	handle("POST /api/reviews/{id}/approve", h.Reviews.ApproveReview)
	handle("POST /api/assessments", h.Reviews.CreateAssessment)
	handle("GET /api/users/{userId}/assessments", h.Reviews.GetAssessmentsByUser)
	handle("POST /api/assessments/{id}/approve", h.Reviews.ApproveAssessment)
	handle("POST /api/feedback", h.Reviews.CreateFeedback)
	handle("GET /api/users/{userId}/feedback", h.Reviews.GetFeedbackForUser)

	// Budgets and transactions
	handle("POST /api/budgets", h.Budgets.CreateBudget)
	handle("GET /api/projects/{projectId}/budget", h.Budgets.GetBudgetByProject)
	handle("POST /api/transactions", h.Budgets.PostTransaction)
	handle("GET /api/projects/{projectId}/transactions", h.Budgets.GetTransactionsByProject)
	handle("POST /api/transactions/{id}/approve", h.Budgets.ApproveTransaction)
	handle("POST /api/transactions/{id}/reject", h.Budgets.RejectTransaction)
	handle("DELETE /api/transactions/{id}", h.Budgets.DeleteTransaction)

	// Audit, notifications, AI reports, settings
	handle("GET /api/audit-logs", h.System.GetAuditLogs)
	handle("GET /api/users/{userId}/notifications", h.System.GetNotifications)
	handle("POST /api/notifications/{id}/read", h.System.MarkNotificationRead)
	handle("POST /api/ai-reports", h.System.CreateAIReport)
	handle("GET /api/ai-reports/active", h.System.GetActiveAIReports)
	handle("PUT /api/settings", h.System.SaveSettings)
	handle("GET /api/users/{userId}/settings", h.System.GetSettingsForUser)

	return mux
}
