package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc              func(ctx context.Context, user *domain.User) error
	FindByEmailFunc         func(ctx context.Context, email string) (*domain.User, error)
	FindByPhoneFunc         func(ctx context.Context, phone string) (*domain.User, error)
	FindByIDFunc            func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateByIDFunc          func(ctx context.Context, id primitive.ObjectID, upd domain.UserUpdate) error
	UpdateByIDWithRolesFunc func(ctx context.Context, id primitive.ObjectID, allowedRoles []string, upd domain.UserUpdate) error
	DeleteByIDWithRolesFunc func(ctx context.Context, id primitive.ObjectID, allowedRoles []string) error
	ListFunc                func(ctx context.Context, opts domain.ListOptions) ([]*domain.User, error)
	SetRefreshTokenFunc     func(ctx context.Context, id primitive.ObjectID, token string) error
	ClearRefreshTokenFunc   func(ctx context.Context, id primitive.ObjectID) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = primitive.NewObjectID()
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.NewNotFoundError("User")
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.NewNotFoundError("User")
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.NewNotFoundError("User")
}

func (m *MockUserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, upd domain.UserUpdate) error {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, upd)
	}
	return nil
}

func (m *MockUserRepository) UpdateByIDWithRoles(ctx context.Context, id primitive.ObjectID, allowedRoles []string, upd domain.UserUpdate) error {
	if m.UpdateByIDWithRolesFunc != nil {
		return m.UpdateByIDWithRolesFunc(ctx, id, allowedRoles, upd)
	}
	return nil
}

func (m *MockUserRepository) DeleteByIDWithRoles(ctx context.Context, id primitive.ObjectID, allowedRoles []string) error {
	if m.DeleteByIDWithRolesFunc != nil {
		return m.DeleteByIDWithRolesFunc(ctx, id, allowedRoles)
	}
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, opts domain.ListOptions) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, opts)
	}
	return nil, nil
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	if m.SetRefreshTokenFunc != nil {
		return m.SetRefreshTokenFunc(ctx, id, token)
	}
	return nil
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	if m.ClearRefreshTokenFunc != nil {
		return m.ClearRefreshTokenFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
