package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobAlert records a contact address plus a snapshot of the filter criteria
// in effect when the alert was created. Alerts are append-only and live only
// for the current process.
type JobAlert struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Search string    `json:"search"`
	Region Region    `json:"region"`
	Type   JobType   `json:"type"`
}

// CreateAlertRequest is the boundary-level request for alert creation. The
// email shape is enforced here, before the capture logic runs; the capture
// logic itself only checks non-emptiness.
type CreateAlertRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Validate validates the CreateAlertRequest using the validator.
func (r *CreateAlertRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
