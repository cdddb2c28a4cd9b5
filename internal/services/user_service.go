package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// Target-role sets per actor role. A superviser only touches plain users; an
// admin also touches supervisers. Nobody touches admin targets.
var manageableRoles = map[string][]string{
	domain.RoleSuperviser: {domain.RoleUser},
	domain.RoleAdmin:      {domain.RoleUser, domain.RoleSuperviser},
}

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository, passwordSvc domain.PasswordService) domain.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// assignableRole reports whether an admin may hand out the role. Admin
// accounts are never created or assigned through the API.
func assignableRole(role string) bool {
	return role == domain.RoleUser || role == domain.RoleSuperviser
}

// CreateByAdmin implements domain.UserService
func (s *UserServiceImpl) CreateByAdmin(ctx context.Context, input domain.SignupInput, role string) (*domain.User, error) {
	if role == "" {
		role = domain.RoleUser
	}
	if !assignableRole(role) {
		return nil, &domain.InvalidFieldError{Field: "role", Reason: "invalid"}
	}

	hashed, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hashed,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID implements domain.UserService
func (s *UserServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// List implements domain.UserService
func (s *UserServiceImpl) List(ctx context.Context, opts domain.ListOptions) ([]*domain.User, error) {
	return s.userRepo.List(ctx, opts)
}

// UpdateWithScope implements domain.UserService. The repository's compound
// predicate yields NotFound both for a missing id and for a target outside
// the actor's allowed role set.
func (s *UserServiceImpl) UpdateWithScope(ctx context.Context, actorRole string, id primitive.ObjectID, upd domain.UserUpdate, plainPassword string) error {
	allowed, ok := manageableRoles[actorRole]
	if !ok {
		return domain.ErrForbidden
	}
	if upd.Role != nil && !assignableRole(*upd.Role) {
		return &domain.InvalidFieldError{Field: "role", Reason: "invalid"}
	}

	if plainPassword != "" {
		hashed, err := s.passwordSvc.Hash(plainPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		upd.PasswordHash = &hashed
	}

	return s.userRepo.UpdateByIDWithRoles(ctx, id, allowed, upd)
}

// DeleteWithScope implements domain.UserService
func (s *UserServiceImpl) DeleteWithScope(ctx context.Context, actorRole string, id primitive.ObjectID) error {
	allowed, ok := manageableRoles[actorRole]
	if !ok {
		return domain.ErrForbidden
	}
	return s.userRepo.DeleteByIDWithRoles(ctx, id, allowed)
}

// UpdateSelf implements domain.UserService. Role is never settable here; the
// whitelist upstream already rejects it, and the update struct carries none.
func (s *UserServiceImpl) UpdateSelf(ctx context.Context, id primitive.ObjectID, upd domain.UserUpdate, plainPassword string) error {
	upd.Role = nil

	if plainPassword != "" {
		hashed, err := s.passwordSvc.Hash(plainPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		upd.PasswordHash = &hashed
	}

	return s.userRepo.UpdateByID(ctx, id, upd)
}
