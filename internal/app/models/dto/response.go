package dto

import (
	"time"

	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the uniform body of every course endpoint
type Envelope struct {
	Status  string                 `json:"status" example:"success" enums:"success,error"`
	Message string                 `json:"message" example:"Course created successfully"`
	Data    interface{}            `json:"data"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// NewSuccessEnvelope wraps data in a success envelope
func NewSuccessEnvelope(message string, data interface{}) Envelope {
	return Envelope{Status: StatusSuccess, Message: message, Data: data}
}

// NewErrorEnvelope builds an error envelope with null data
func NewErrorEnvelope(message string) Envelope {
	return Envelope{Status: StatusError, Message: message, Data: nil}
}

// WithErrors attaches field-level validation messages
func (e Envelope) WithErrors(fields []apperrors.FieldError) Envelope {
	e.Errors = fields
	return e
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
