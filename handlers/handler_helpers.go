package handlers

import (
	"net/http"
	"strconv"

	middleware "workpulse/middlewares"
	"workpulse/models"
	service "workpulse/services"
	"workpulse/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pathID parses an ObjectID path segment, writing the 400 itself on failure.
func pathID(w http.ResponseWriter, r *http.Request, segment string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(r.PathValue(segment))
	if err != nil {
		utils.HandleMessageResponse(w, "invalid id", http.StatusBadRequest)
		return primitive.NilObjectID, false
	}
	return id, true
}

// queryLimit reads an optional ?limit= parameter; 0 means no limit.
func queryLimit(r *http.Request) int64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// orgID resolves the caller's organisation from the JWT claims.
func orgID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	claims := middleware.GetClaimsFromContext(r.Context())
	id, err := primitive.ObjectIDFromHex(claims.OrganizationID)
	if err != nil {
		utils.HandleMessageResponse(w, "missing organization claim", http.StatusForbidden)
		return primitive.NilObjectID, false
	}
	return id, true
}

// recordAudit writes an audit entry for a mutating request. Audit failure
// never blocks the request itself.
func recordAudit(r *http.Request, system service.SystemService, action, entityType string, entityID primitive.ObjectID) {
	claims := middleware.GetClaimsFromContext(r.Context())
	org, err := primitive.ObjectIDFromHex(claims.OrganizationID)
	if err != nil {
		return
	}

	log := &models.AuditLog{
		OrganizationID: org,
		Action:         action,
		EntityType:     entityType,
	}
	if !entityID.IsZero() {
		log.EntityID = &entityID
	}
	_ = system.RecordAudit(r.Context(), log)
}
