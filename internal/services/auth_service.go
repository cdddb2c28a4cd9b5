package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/validation"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	providers   domain.ProviderClient
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	providers domain.ProviderClient,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		providers:   providers,
	}
}

// Signup implements domain.AuthService. New users always get role "user";
// privileged roles are only assignable through admin creation.
func (s *AuthServiceImpl) Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error) {
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
		Role:         domain.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Login implements domain.AuthService. The identifier is classified as email
// or phone by format; a credential mismatch never reveals which part failed.
func (s *AuthServiceImpl) Login(ctx context.Context, emailOrPhone, password string) (*domain.AuthResult, error) {
	var user *domain.User
	var err error

	switch validation.ClassifyIdentifier(emailOrPhone) {
	case validation.IdentifierEmail:
		user, err = s.userRepo.FindByEmail(ctx, emailOrPhone)
	case validation.IdentifierPhone:
		user, err = s.userRepo.FindByPhone(ctx, emailOrPhone)
	default:
		return nil, domain.NewNotFoundError("User")
	}
	if err != nil {
		return nil, err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrWrongPassword
	}

	return s.issueTokens(ctx, user)
}

// LoginByThirdParty implements domain.AuthService. The provider token is
// introspected first; a local user is then found or created by email.
func (s *AuthServiceImpl) LoginByThirdParty(ctx context.Context, provider string, input domain.ThirdPartyInput) (*domain.AuthResult, error) {
	if err := s.providers.Validate(ctx, provider, input.Token); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !domain.IsNotFound(err) {
			return nil, err
		}
		user = &domain.User{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			AvatarURL: input.AvatarURL,
			Role:      domain.RoleUser,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(ctx, user)
}

// RefreshTokens implements domain.AuthService. Beyond signature and expiry,
// the presented token must equal the user's stored refresh token; rotation
// immediately revokes every previously issued refresh token.
func (s *AuthServiceImpl) RefreshTokens(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, domain.NewInvalidTokenError(domain.TokenRevoked)
	}

	return s.issueTokens(ctx, user)
}

// Logout implements domain.AuthService. Clearing the slot invalidates the
// outstanding refresh token; access tokens simply age out.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID primitive.ObjectID) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

// ChangePassword implements domain.AuthService. No token rotation happens
// here; existing sessions stay valid.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, oldPassword) {
		return domain.ErrWrongPassword
	}

	hashed, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdateByID(ctx, userID, domain.UserUpdate{PasswordHash: &hashed})
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// issueTokens signs a fresh access/refresh pair and persists the refresh
// token on the user record, overwriting any prior value.
func (s *AuthServiceImpl) issueTokens(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	accessToken, err := s.tokenSvc.IssueAccess(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.IssueRefresh(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	user.RefreshToken = refreshToken

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTTL().Seconds()),
	}, nil
}
