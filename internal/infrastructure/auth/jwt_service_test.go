package auth

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

func newTestService(accessTTL, refreshTTL time.Duration) domain.TokenService {
	return NewJWTService("access-secret", "refresh-secret", "test", accessTTL, refreshTTL)
}

func TestJWTService_AccessRoundTrip(t *testing.T) {
	svc := newTestService(15*time.Minute, 7*24*time.Hour)
	userID := primitive.NewObjectID()

	token, err := svc.IssueAccess(userID, domain.RoleSuperviser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := svc.VerifyAccess(token)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID.Hex(), claims.UserID.Hex())
	}
	if claims.Role != domain.RoleSuperviser {
		t.Errorf("expected role %q, got %q", domain.RoleSuperviser, claims.Role)
	}
}

func TestJWTService_RefreshRoundTrip(t *testing.T) {
	svc := newTestService(15*time.Minute, 7*24*time.Hour)
	userID := primitive.NewObjectID()

	token, err := svc.IssueRefresh(userID)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := svc.VerifyRefresh(token)
	if err != nil {
		t.Fatalf("VerifyRefresh: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID.Hex(), claims.UserID.Hex())
	}
	if claims.Role != "" {
		t.Errorf("refresh token should carry no role, got %q", claims.Role)
	}
}

func TestJWTService_SecretsAreSeparate(t *testing.T) {
	svc := newTestService(15*time.Minute, 7*24*time.Hour)
	userID := primitive.NewObjectID()

	access, err := svc.IssueAccess(userID, domain.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	refresh, err := svc.IssueRefresh(userID)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	if _, err := svc.VerifyRefresh(access); err == nil {
		t.Error("access token verified as refresh token")
	}
	if _, err := svc.VerifyAccess(refresh); err == nil {
		t.Error("refresh token verified as access token")
	}
}

func TestJWTService_Failures(t *testing.T) {
	svc := newTestService(15*time.Minute, 7*24*time.Hour)
	userID := primitive.NewObjectID()

	tests := []struct {
		name       string
		token      func(t *testing.T) string
		wantReason string
	}{
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := newTestService(-time.Minute, 7*24*time.Hour)
				tok, err := expired.IssueAccess(userID, domain.RoleUser)
				if err != nil {
					t.Fatalf("IssueAccess: %v", err)
				}
				return tok
			},
			wantReason: domain.TokenExpired,
		},
		{
			name: "forged signature",
			token: func(t *testing.T) string {
				other := NewJWTService("other-secret", "other-refresh", "test", 15*time.Minute, time.Hour)
				tok, err := other.IssueAccess(userID, domain.RoleUser)
				if err != nil {
					t.Fatalf("IssueAccess: %v", err)
				}
				return tok
			},
			wantReason: domain.TokenMalformed,
		},
		{
			name:       "garbage token",
			token:      func(t *testing.T) string { return "not.a.token" },
			wantReason: domain.TokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccess(tt.token(t))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			ite, ok := err.(*domain.InvalidTokenError)
			if !ok {
				t.Fatalf("expected InvalidTokenError, got %T", err)
			}
			if ite.Reason != tt.wantReason {
				t.Errorf("expected reason %q, got %q", tt.wantReason, ite.Reason)
			}
		})
	}
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "secret" {
		t.Fatal("hash equals plaintext")
	}
	if !svc.Verify(hash, "secret") {
		t.Error("Verify(hash, correct) = false")
	}
	if svc.Verify(hash, "wrong") {
		t.Error("Verify(hash, wrong) = true")
	}
}
