package repositories

import (
	"context"

	"motor-kita.backend/internal/domain/entities"
)

// SubmissionPayload is the boundary contract sent to the downstream
// processor: canonical plate, personal data with derived attributes, car.
type SubmissionPayload struct {
	Plate    string             `json:"plate"`
	Personal SubmissionPersonal `json:"personal"`
	Car      entities.CarInfo   `json:"car"`
}

// SubmissionPersonal is PersonalInfo flattened together with the derived
// identity attributes, matching the downstream schema.
type SubmissionPersonal struct {
	entities.PersonalInfo
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dobISO"`
}

// SubmissionGateway submits the assembled application downstream. Transport
// failures are returned as errors and converted to result values by the
// caller; they never carry partial results.
type SubmissionGateway interface {
	Submit(ctx context.Context, payload SubmissionPayload) (*entities.SubmissionResult, error)
}
