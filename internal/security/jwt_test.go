package security_test

import (
	"testing"
	"time"

	"github.com/dgarciab/formspace/internal/security"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := security.NewJWTManager("test-secret-key-with-32-chars!!", 15*time.Minute, 7*24*time.Hour)

	userID := int64(42)
	email := "test@example.com"

	// Generate access token
	accessToken, err := manager.GenerateAccessToken(userID, email)
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	if accessToken == "" {
		t.Error("access token is empty")
	}

	// Validate access token
	claims, err := manager.ValidateAccessToken(accessToken)
	if err != nil {
		t.Fatalf("failed to validate access token: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("user ID mismatch: got %v, want %v", claims.UserID, userID)
	}

	if claims.Email != email {
		t.Errorf("email mismatch: got %v, want %v", claims.Email, email)
	}
}

func TestJWTManager_RefreshToken(t *testing.T) {
	manager := security.NewJWTManager("test-secret-key-with-32-chars!!", 15*time.Minute, 7*24*time.Hour)

	userID := int64(42)

	refreshToken, err := manager.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	got, err := manager.ValidateRefreshToken(refreshToken)
	if err != nil {
		t.Fatalf("failed to validate refresh token: %v", err)
	}

	if got != userID {
		t.Errorf("user ID mismatch: got %v, want %v", got, userID)
	}
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := security.NewJWTManager("test-secret-key-with-32-chars!!", -time.Minute, 7*24*time.Hour)

	accessToken, err := manager.GenerateAccessToken(42, "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	if _, err := manager.ValidateAccessToken(accessToken); err == nil {
		t.Error("expected expired token to fail validation")
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := security.NewJWTManager("test-secret-key-with-32-chars!!", 15*time.Minute, 7*24*time.Hour)
	other := security.NewJWTManager("another-secret-key-32-chars!!!!", 15*time.Minute, 7*24*time.Hour)

	accessToken, err := manager.GenerateAccessToken(42, "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	if _, err := other.ValidateAccessToken(accessToken); err == nil {
		t.Error("expected token signed with a different secret to fail validation")
	}
}

func TestJWTManager_TokenPair(t *testing.T) {
	manager := security.NewJWTManager("test-secret-key-with-32-chars!!", 15*time.Minute, 7*24*time.Hour)

	access, refresh, expiresIn, err := manager.GenerateTokenPair(42, "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if access == "" || refresh == "" {
		t.Error("expected non-empty token pair")
	}

	if expiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("expires_in mismatch: got %d", expiresIn)
	}
}
