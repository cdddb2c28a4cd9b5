package mocks

import (
	"context"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// MockProviderClient implements domain.ProviderClient for testing
type MockProviderClient struct {
	ValidateFunc func(ctx context.Context, provider, token string) error
}

// NewMockProviderClient creates a new MockProviderClient with default behaviors
func NewMockProviderClient() *MockProviderClient {
	return &MockProviderClient{}
}

func (m *MockProviderClient) Validate(ctx context.Context, provider, token string) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, provider, token)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ProviderClient = (*MockProviderClient)(nil)
