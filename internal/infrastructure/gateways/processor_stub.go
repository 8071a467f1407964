package gateways

import (
	"context"

	"motor-kita.backend/internal/domain/entities"
	"motor-kita.backend/internal/domain/repositories"
	"motor-kita.backend/pkg/utils"
)

// ProcessorStub is the demo-mode submission gateway used when no processor
// URL is configured. It accepts every application and issues a local
// reference number.
type ProcessorStub struct{}

// NewProcessorStub creates a new processor stub
func NewProcessorStub() *ProcessorStub {
	return &ProcessorStub{}
}

// Submit accepts the payload and fabricates an application id
func (s *ProcessorStub) Submit(ctx context.Context, payload repositories.SubmissionPayload) (*entities.SubmissionResult, error) {
	id, err := utils.GenerateApplicationID()
	if err != nil {
		return nil, err
	}
	return &entities.SubmissionResult{
		OK:            true,
		ApplicationID: id,
		Message:       "Application submitted successfully (demo mode)",
	}, nil
}
