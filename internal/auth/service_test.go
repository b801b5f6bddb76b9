package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/memorywall/backend/internal/users"
	pkgAuth "github.com/memorywall/backend/pkg/auth"
	"github.com/memorywall/backend/pkg/auth/session"
	"github.com/memorywall/backend/pkg/config"
	"github.com/memorywall/backend/pkg/db/models"
	pkgerrors "github.com/memorywall/backend/pkg/errors"
	"github.com/memorywall/backend/pkg/security"
)

type stubUserRepo struct {
	user       *models.User
	err        error
	lastLogins []time.Time
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user == nil {
		return nil, users.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	s.lastLogins = append(s.lastLogins, at)
	return nil
}

type stubSessionManager struct {
	refreshToken string
	generateErr  error

	rotatedAccessID string
	rotateErr       error

	revoked []string
}

func (s *stubSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}
	return s.refreshToken, nil
}

func (s *stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	if s.rotateErr != nil {
		return "", "", s.rotateErr
	}
	s.rotatedAccessID = oldAccessID
	return "new-access-id", "new-refresh-token", nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "memorywall",
		ExpirationMinutes: 30,
	}
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{
		ID:           uuid.New(),
		Email:        "a@memorywall.local",
		DisplayName:  "A",
		PasswordHash: hash,
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	cfg := testJWTConfig()
	user := testUser(t, "wall-secret-1")
	repo := &stubUserRepo{user: user}
	sessions := &stubSessionManager{refreshToken: "refresh-token"}
	svc := NewService(repo, sessions, cfg, nil)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    user.Email,
		Password: "wall-secret-1",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(cfg, result.Tokens.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("claims carry wrong user id: %s", claims.UserID)
	}
	if claims.Email != user.Email {
		t.Fatalf("claims carry wrong email: %s", claims.Email)
	}
	if result.Tokens.RefreshToken != "refresh-token" {
		t.Fatalf("refresh token missing from result")
	}
	if result.User.Email != user.Email {
		t.Fatalf("user view missing from result")
	}
	if len(repo.lastLogins) != 1 {
		t.Fatalf("expected last login stamp")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "wall-secret-1")
	svc := NewService(&stubUserRepo{user: user}, &stubSessionManager{refreshToken: "r"}, testJWTConfig(), nil)

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    user.Email,
		Password: "wrong-password",
	})
	if err == nil {
		t.Fatalf("expected unauthorized")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized got %v", err)
	}
}

func TestLoginUnknownEmailMatchesWrongPasswordError(t *testing.T) {
	user := testUser(t, "wall-secret-1")
	svc := NewService(&stubUserRepo{user: user}, &stubSessionManager{refreshToken: "r"}, testJWTConfig(), nil)

	_, wrongPassErr := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "nope"})

	svcUnknown := NewService(&stubUserRepo{}, &stubSessionManager{refreshToken: "r"}, testJWTConfig(), nil)
	_, unknownErr := svcUnknown.Login(context.Background(), LoginInput{Email: "ghost@memorywall.local", Password: "nope"})

	if wrongPassErr == nil || unknownErr == nil {
		t.Fatalf("expected both logins to fail")
	}
	if wrongPassErr.Error() != unknownErr.Error() {
		t.Fatalf("credential errors should be indistinguishable: %q vs %q", wrongPassErr, unknownErr)
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	cfg := testJWTConfig()
	user := testUser(t, "wall-secret-1")
	accessID := session.NewAccessID()

	accessToken, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		JTI:    accessID,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	sessions := &stubSessionManager{}
	svc := NewService(&stubUserRepo{user: user}, sessions, cfg, nil)

	pair, err := svc.Refresh(context.Background(), RefreshInput{
		AccessToken:  accessToken,
		RefreshToken: "old-refresh-token",
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if sessions.rotatedAccessID != accessID {
		t.Fatalf("rotate called with %q, want %q", sessions.rotatedAccessID, accessID)
	}
	if pair.RefreshToken != "new-refresh-token" {
		t.Fatalf("new refresh token missing")
	}

	claims, err := pkgAuth.ParseAccessToken(cfg, pair.AccessToken)
	if err != nil {
		t.Fatalf("parse rotated token: %v", err)
	}
	if claims.ID != "new-access-id" {
		t.Fatalf("rotated token should carry the new access id, got %s", claims.ID)
	}
}

func TestRefreshInvalidRefreshToken(t *testing.T) {
	cfg := testJWTConfig()
	user := testUser(t, "wall-secret-1")
	accessToken, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	sessions := &stubSessionManager{rotateErr: session.ErrInvalidRefreshToken}
	svc := NewService(&stubUserRepo{user: user}, sessions, cfg, nil)

	_, err = svc.Refresh(context.Background(), RefreshInput{
		AccessToken:  accessToken,
		RefreshToken: "stale",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized got %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := &stubSessionManager{}
	svc := NewService(&stubUserRepo{}, sessions, testJWTConfig(), nil)

	if err := svc.Logout(context.Background(), "access-id"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "access-id" {
		t.Fatalf("revoke not called: %v", sessions.revoked)
	}
}

func TestLoginRepoFailure(t *testing.T) {
	svc := NewService(&stubUserRepo{err: errors.New("db down")}, &stubSessionManager{}, testJWTConfig(), nil)

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@memorywall.local", Password: "x"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error got %v", err)
	}
}
