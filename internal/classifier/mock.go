package classifier

import (
	"context"
	"io"
	"time"
)

// MockService is a mock implementation of Service for development/testing.
type MockService struct {
	// Label is returned for every image.
	Label string
	// SimulatedDelay is the time to simulate classification.
	SimulatedDelay time.Duration
}

// NewMockService creates a new MockService with default settings.
func NewMockService() *MockService {
	return &MockService{
		Label:          "Plastic",
		SimulatedDelay: 500 * time.Millisecond,
	}
}

// Classify simulates classification.
func (s *MockService) Classify(ctx context.Context, _, _ string, image io.Reader) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.SimulatedDelay):
	}

	_, _ = io.Copy(io.Discard, image)
	return s.Label, nil
}
