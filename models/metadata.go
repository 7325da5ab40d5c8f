package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Metadata carries audit fields shared by every document.
type Metadata struct {
	CreatedBy string    `json:"created_by" bson:"created_by"`
	UpdatedBy string    `json:"updated_by" bson:"updated_by"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Touch stamps creation metadata on first save and update metadata on every save.
func (m *Metadata) Touch(by string, now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
		m.CreatedBy = by
	}
	m.UpdatedAt = now
	m.UpdatedBy = by
}

// ValidationError is a document-level invariant violation. Rule names the
// violated invariant so callers can surface it without parsing the message.
type ValidationError struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(rule, message string) *ValidationError {
	return &ValidationError{Rule: rule, Message: message}
}

// countOwners reports how many of the given owner references are set. Entities
// with an exactly-one-owner rule use it in their Validate methods.
func countOwners(ids ...*primitive.ObjectID) int {
	n := 0
	for _, id := range ids {
		if id != nil && !id.IsZero() {
			n++
		}
	}
	return n
}
