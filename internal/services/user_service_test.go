package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/mocks"
)

func TestUserServiceImpl_ScopedRoleSets(t *testing.T) {
	tests := []struct {
		name          string
		actorRole     string
		wantRoles     []string
		wantForbidden bool
	}{
		{
			name:      "superviser only touches users",
			actorRole: domain.RoleSuperviser,
			wantRoles: []string{domain.RoleUser},
		},
		{
			name:      "admin touches users and supervisers",
			actorRole: domain.RoleAdmin,
			wantRoles: []string{domain.RoleUser, domain.RoleSuperviser},
		},
		{
			name:          "plain user is forbidden",
			actorRole:     domain.RoleUser,
			wantForbidden: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			var gotUpdate, gotDelete []string
			userRepo.UpdateByIDWithRolesFunc = func(ctx context.Context, id primitive.ObjectID, allowedRoles []string, upd domain.UserUpdate) error {
				gotUpdate = allowedRoles
				return nil
			}
			userRepo.DeleteByIDWithRolesFunc = func(ctx context.Context, id primitive.ObjectID, allowedRoles []string) error {
				gotDelete = allowedRoles
				return nil
			}

			svc := NewUserService(userRepo, mocks.NewMockPasswordService())
			id := primitive.NewObjectID()

			updErr := svc.UpdateWithScope(context.Background(), tt.actorRole, id, domain.UserUpdate{}, "")
			delErr := svc.DeleteWithScope(context.Background(), tt.actorRole, id)

			if tt.wantForbidden {
				if !errors.Is(updErr, domain.ErrForbidden) || !errors.Is(delErr, domain.ErrForbidden) {
					t.Fatalf("expected ErrForbidden, got update=%v delete=%v", updErr, delErr)
				}
				return
			}
			if updErr != nil || delErr != nil {
				t.Fatalf("unexpected errors: update=%v delete=%v", updErr, delErr)
			}
			if !reflect.DeepEqual(gotUpdate, tt.wantRoles) {
				t.Errorf("update role set = %v, want %v", gotUpdate, tt.wantRoles)
			}
			if !reflect.DeepEqual(gotDelete, tt.wantRoles) {
				t.Errorf("delete role set = %v, want %v", gotDelete, tt.wantRoles)
			}
		})
	}
}

func TestUserServiceImpl_ScopedMissYieldsNotFound(t *testing.T) {
	// Whether the id is absent or the target is an admin, the caller sees the
	// same NotFound.
	userRepo := mocks.NewMockUserRepository()
	userRepo.DeleteByIDWithRolesFunc = func(ctx context.Context, id primitive.ObjectID, allowedRoles []string) error {
		return domain.NewNotFoundError("User")
	}

	svc := NewUserService(userRepo, mocks.NewMockPasswordService())
	err := svc.DeleteWithScope(context.Background(), domain.RoleSuperviser, primitive.NewObjectID())
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUserServiceImpl_CreateByAdmin(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	var created *domain.User
	userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
		created = user
		user.ID = primitive.NewObjectID()
		return nil
	}

	svc := NewUserService(userRepo, mocks.NewMockPasswordService())

	user, err := svc.CreateByAdmin(context.Background(), domain.SignupInput{
		FirstName: "S", LastName: "V", Email: "s@v.com", Password: "secret", Phone: "0912345679",
	}, domain.RoleSuperviser)
	if err != nil {
		t.Fatalf("CreateByAdmin: %v", err)
	}
	if user.Role != domain.RoleSuperviser {
		t.Errorf("expected role %q, got %q", domain.RoleSuperviser, user.Role)
	}
	if created.PasswordHash != "hashed_secret" {
		t.Errorf("expected hashed password, got %q", created.PasswordHash)
	}

	// Empty role defaults to plain user.
	user, err = svc.CreateByAdmin(context.Background(), domain.SignupInput{Email: "u@v.com", Password: "secret"}, "")
	if err != nil {
		t.Fatalf("CreateByAdmin: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
}

func TestUserServiceImpl_RoleAssignmentBounds(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	var createCalls, updateCalls int
	userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
		createCalls++
		return nil
	}
	userRepo.UpdateByIDWithRolesFunc = func(ctx context.Context, id primitive.ObjectID, allowedRoles []string, upd domain.UserUpdate) error {
		updateCalls++
		return nil
	}

	svc := NewUserService(userRepo, mocks.NewMockPasswordService())

	// Only user and superviser are assignable; admin and garbage are not.
	for _, role := range []string{domain.RoleAdmin, "root", "Superviser"} {
		_, err := svc.CreateByAdmin(context.Background(), domain.SignupInput{Email: "x@y.com", Password: "secret"}, role)
		var fe *domain.InvalidFieldError
		if !errors.As(err, &fe) || fe.Field != "role" {
			t.Errorf("CreateByAdmin(%q): err = %v, want InvalidFieldError on role", role, err)
		}

		r := role
		err = svc.UpdateWithScope(context.Background(), domain.RoleAdmin, primitive.NewObjectID(), domain.UserUpdate{Role: &r}, "")
		if !errors.As(err, &fe) || fe.Field != "role" {
			t.Errorf("UpdateWithScope role %q: err = %v, want InvalidFieldError on role", role, err)
		}
	}
	if createCalls != 0 || updateCalls != 0 {
		t.Errorf("repo reached with invalid role: create=%d update=%d", createCalls, updateCalls)
	}

	sup := domain.RoleSuperviser
	if err := svc.UpdateWithScope(context.Background(), domain.RoleAdmin, primitive.NewObjectID(), domain.UserUpdate{Role: &sup}, ""); err != nil {
		t.Fatalf("UpdateWithScope to superviser: %v", err)
	}
	if updateCalls != 1 {
		t.Errorf("expected valid role change to reach the repo, calls = %d", updateCalls)
	}
}

func TestUserServiceImpl_UpdateSelf(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	var got domain.UserUpdate
	userRepo.UpdateByIDFunc = func(ctx context.Context, id primitive.ObjectID, upd domain.UserUpdate) error {
		got = upd
		return nil
	}

	svc := NewUserService(userRepo, mocks.NewMockPasswordService())

	role := domain.RoleAdmin
	first := "New"
	err := svc.UpdateSelf(context.Background(), primitive.NewObjectID(), domain.UserUpdate{FirstName: &first, Role: &role}, "newpass")
	if err != nil {
		t.Fatalf("UpdateSelf: %v", err)
	}
	if got.Role != nil {
		t.Error("self update must never set role")
	}
	if got.FirstName == nil || *got.FirstName != "New" {
		t.Error("expected first name update to pass through")
	}
	if got.PasswordHash == nil || *got.PasswordHash != "hashed_newpass" {
		t.Error("expected password to be re-hashed")
	}
}
