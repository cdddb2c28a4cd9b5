package mocks

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	SignupFunc            func(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error)
	LoginFunc             func(ctx context.Context, emailOrPhone, password string) (*domain.AuthResult, error)
	LoginByThirdPartyFunc func(ctx context.Context, provider string, input domain.ThirdPartyInput) (*domain.AuthResult, error)
	RefreshTokensFunc     func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc            func(ctx context.Context, userID primitive.ObjectID) error
	ChangePasswordFunc    func(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error
	GetProfileFunc        func(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
}

func NewMockAuthService() *MockAuthService { return &MockAuthService{} }

func (m *MockAuthService) Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, input)
	}
	return nil, domain.ErrUnauthorized
}

func (m *MockAuthService) Login(ctx context.Context, emailOrPhone, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, emailOrPhone, password)
	}
	return nil, domain.ErrWrongPassword
}

func (m *MockAuthService) LoginByThirdParty(ctx context.Context, provider string, input domain.ThirdPartyInput) (*domain.AuthResult, error) {
	if m.LoginByThirdPartyFunc != nil {
		return m.LoginByThirdPartyFunc(ctx, provider, input)
	}
	return nil, domain.ErrUnauthorized
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshTokensFunc != nil {
		return m.RefreshTokensFunc(ctx, refreshToken)
	}
	return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
}

func (m *MockAuthService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return nil
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, oldPassword, newPassword)
	}
	return nil
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.NewNotFoundError("User")
}

// MockUserService implements domain.UserService for testing
type MockUserService struct {
	CreateByAdminFunc   func(ctx context.Context, input domain.SignupInput, role string) (*domain.User, error)
	GetByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	ListFunc            func(ctx context.Context, opts domain.ListOptions) ([]*domain.User, error)
	UpdateWithScopeFunc func(ctx context.Context, actorRole string, id primitive.ObjectID, upd domain.UserUpdate, plainPassword string) error
	DeleteWithScopeFunc func(ctx context.Context, actorRole string, id primitive.ObjectID) error
	UpdateSelfFunc      func(ctx context.Context, id primitive.ObjectID, upd domain.UserUpdate, plainPassword string) error
}

func NewMockUserService() *MockUserService { return &MockUserService{} }

func (m *MockUserService) CreateByAdmin(ctx context.Context, input domain.SignupInput, role string) (*domain.User, error) {
	if m.CreateByAdminFunc != nil {
		return m.CreateByAdminFunc(ctx, input, role)
	}
	return nil, domain.ErrForbidden
}

func (m *MockUserService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.NewNotFoundError("User")
}

func (m *MockUserService) List(ctx context.Context, opts domain.ListOptions) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, opts)
	}
	return nil, nil
}

func (m *MockUserService) UpdateWithScope(ctx context.Context, actorRole string, id primitive.ObjectID, upd domain.UserUpdate, plainPassword string) error {
	if m.UpdateWithScopeFunc != nil {
		return m.UpdateWithScopeFunc(ctx, actorRole, id, upd, plainPassword)
	}
	return nil
}

func (m *MockUserService) DeleteWithScope(ctx context.Context, actorRole string, id primitive.ObjectID) error {
	if m.DeleteWithScopeFunc != nil {
		return m.DeleteWithScopeFunc(ctx, actorRole, id)
	}
	return nil
}

func (m *MockUserService) UpdateSelf(ctx context.Context, id primitive.ObjectID, upd domain.UserUpdate, plainPassword string) error {
	if m.UpdateSelfFunc != nil {
		return m.UpdateSelfFunc(ctx, id, upd, plainPassword)
	}
	return nil
}

// MockFileStore implements domain.FileStore for testing
type MockFileStore struct {
	UploadFunc func(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

func NewMockFileStore() *MockFileStore { return &MockFileStore{} }

func (m *MockFileStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, filename, contentType, body)
	}
	return "https://bucket.s3.region.amazonaws.com/" + filename, nil
}

// Compile-time interface compliance verification
var (
	_ domain.AuthService = (*MockAuthService)(nil)
	_ domain.UserService = (*MockUserService)(nil)
	_ domain.FileStore   = (*MockFileStore)(nil)
)
