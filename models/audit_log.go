package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Keyword lists for severity classification, checked in priority order.
var (
	highSeverityKeywords   = []string{"delete", "remove", "terminate", "suspend"}
	mediumSeverityKeywords = []string{"create", "update", "modify", "change"}
)

var moduleKeywords = []struct {
	keyword string
	module  string
}{
	{"project", "projects"},
	{"task", "tasks"},
	{"milestone", "projects"},
	{"okr", "okrs"},
	{"review", "reviews"},
	{"feedback", "reviews"},
	{"budget", "budgets"},
	{"transaction", "budgets"},
	{"comment", "collaboration"},
	{"attachment", "collaboration"},
}

// AuditLog is append-only: it is written once and never updated.
type AuditLog struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	OrganizationID primitive.ObjectID  `json:"organization_id" bson:"organization_id" validate:"required"`
	UserID         *primitive.ObjectID `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Action         string              `json:"action" bson:"action" validate:"required,max=500"`
	EntityType     string              `json:"entity_type" bson:"entity_type" validate:"max=50"`
	EntityID       *primitive.ObjectID `json:"entity_id,omitempty" bson:"entity_id,omitempty"`
	Module         string              `json:"module" bson:"module" validate:"max=50"`
	Severity       Severity            `json:"severity" bson:"severity" validate:"omitempty,oneof=low medium high critical"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
}

// Classify fills severity and module on first save only. An explicitly set
// severity is never reclassified.
func (l *AuditLog) Classify() {
	action := strings.ToLower(l.Action)
	if l.Severity == "" {
		l.Severity = classifySeverity(action)
	}
	if l.Module == "" {
		l.Module = inferModule(l.EntityType, action)
	}
}

func classifySeverity(action string) Severity {
	for _, kw := range highSeverityKeywords {
		if strings.Contains(action, kw) {
			return SeverityHigh
		}
	}
	for _, kw := range mediumSeverityKeywords {
		if strings.Contains(action, kw) {
			return SeverityMedium
		}
	}
	return SeverityLow
}

func inferModule(entityType, action string) string {
	if entityType != "" {
		return strings.ToLower(entityType)
	}
	for _, mk := range moduleKeywords {
		if strings.Contains(action, mk.keyword) {
			return mk.module
		}
	}
	return "system"
}
