package utils

import (
	"strings"
	"testing"

	"github.com/KBARATH13/QuizCraft/internal/config"
)

func TestJWTRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	token, err := GenerateJWT("u1")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", claims.UserID)
	}
}

func TestValidateJWTRejects(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	token, err := GenerateJWT("u1")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	t.Run("empty token", func(t *testing.T) {
		if _, err := ValidateJWT(""); err == nil {
			t.Error("empty token accepted")
		}
	})

	t.Run("tampered signature", func(t *testing.T) {
		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]
		if _, err := ValidateJWT(tampered); err == nil {
			t.Error("tampered token accepted")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		config.AppConfig = &config.Config{JWTSecret: "other-secret"}
		defer func() { config.AppConfig = &config.Config{JWTSecret: "test-secret"} }()
		if _, err := ValidateJWT(token); err == nil {
			t.Error("token signed with a different secret accepted")
		}
	})
}
