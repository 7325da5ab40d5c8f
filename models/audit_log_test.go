package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditLogSeverityClassification(t *testing.T) {
	cases := []struct {
		action   string
		severity Severity
	}{
		{"Deleted project Apollo", SeverityHigh},
		{"remove member from team", SeverityHigh},
		{"Terminated contractor access", SeverityHigh},
		{"suspend user account", SeverityHigh},
		{"Created task", SeverityMedium},
		{"update budget categories", SeverityMedium},
		{"User logged in", SeverityLow},
		// High keywords win over medium when both appear.
		{"update then delete attachment", SeverityHigh},
	}
	for _, tc := range cases {
		l := &AuditLog{Action: tc.action}
		l.Classify()
		assert.Equalf(t, tc.severity, l.Severity, "action %q", tc.action)
	}
}

func TestAuditLogSeverityNotReclassified(t *testing.T) {
	l := &AuditLog{Action: "Deleted project Apollo", Severity: SeverityCritical}
	l.Classify()
	assert.Equal(t, SeverityCritical, l.Severity, "explicit severity sticks")
}

func TestAuditLogModuleInference(t *testing.T) {
	l := &AuditLog{Action: "Created task board column"}
	l.Classify()
	assert.Equal(t, "tasks", l.Module)

	l = &AuditLog{Action: "Created task", EntityType: "Project"}
	l.Classify()
	assert.Equal(t, "project", l.Module, "entity type wins over action text")

	l = &AuditLog{Action: "User logged in"}
	l.Classify()
	assert.Equal(t, "system", l.Module)
}
