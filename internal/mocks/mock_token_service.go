package mocks

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueAccessFunc   func(userID primitive.ObjectID, role string) (string, error)
	IssueRefreshFunc  func(userID primitive.ObjectID) (string, error)
	VerifyAccessFunc  func(token string) (*domain.TokenClaims, error)
	VerifyRefreshFunc func(token string) (*domain.TokenClaims, error)
	AccessTTLFunc     func() time.Duration
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) IssueAccess(userID primitive.ObjectID, role string) (string, error) {
	if m.IssueAccessFunc != nil {
		return m.IssueAccessFunc(userID, role)
	}
	return "access_" + userID.Hex(), nil
}

func (m *MockTokenService) IssueRefresh(userID primitive.ObjectID) (string, error) {
	if m.IssueRefreshFunc != nil {
		return m.IssueRefreshFunc(userID)
	}
	return "refresh_" + userID.Hex(), nil
}

func (m *MockTokenService) VerifyAccess(token string) (*domain.TokenClaims, error) {
	if m.VerifyAccessFunc != nil {
		return m.VerifyAccessFunc(token)
	}
	return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
}

func (m *MockTokenService) VerifyRefresh(token string) (*domain.TokenClaims, error) {
	if m.VerifyRefreshFunc != nil {
		return m.VerifyRefreshFunc(token)
	}
	return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
}

func (m *MockTokenService) AccessTTL() time.Duration {
	if m.AccessTTLFunc != nil {
		return m.AccessTTLFunc()
	}
	return 15 * time.Minute
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
