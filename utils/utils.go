package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"workpulse/models"
	repository "workpulse/repositories"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()
}

// DecodeAndValidate decodes the request body into a structure and validates it
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		HandleMessageResponse(w, err.Error(), http.StatusBadRequest)
		return err
	}
	if err := Validate.Struct(v); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)

		for _, e := range validationErrors {
			errorMessages[e.Field()] = e.Tag()
		}
		HandleValidationResponse(w, http.StatusBadRequest, errorMessages)
		return err
	}
	return nil
}

// HandleServiceError maps service-layer failures onto HTTP responses:
// invariant violations become 400s naming the rule, a missing budget category
// is a 409, missing documents are 404s, anything else a 500.
func HandleServiceError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		HandleInvariantResponse(w, http.StatusBadRequest, verr)
	case errors.Is(err, repository.ErrCategoryNotFound):
		HandleMessageResponse(w, err.Error(), http.StatusConflict)
	case errors.Is(err, mongo.ErrNoDocuments):
		HandleMessageResponse(w, "not found", http.StatusNotFound)
	default:
		HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleMessageResponse handles both success and error responses
func HandleMessageResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewMessageResponse(statusCode, message)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// HandleValidationResponse handles validation errors response for struct validation
func HandleValidationResponse(w http.ResponseWriter, statusCode int, validationErrors interface{}) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewValidationResponse(statusCode, validationErrors)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// HandleInvariantResponse reports a document-level invariant violation
func HandleInvariantResponse(w http.ResponseWriter, statusCode int, verr *models.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewInvariantResponse(statusCode, verr.Rule, verr.Message)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// HandleDataResponse handles success responses with data
func HandleDataResponse(w http.ResponseWriter, message string, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	response := models.NewDataResponse(statusCode, message, data)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
