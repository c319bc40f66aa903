package util

import (
	"testing"
	"time"

	"scholarship_portal_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-test-secret-test-secret"

func testUser() *model.User {
	user := &model.User{Name: "T", Email: "t@example.com", Role: model.Manager}
	user.ID = 11
	return user
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 11 || claims.Role != model.Manager || claims.Email != "t@example.com" {
		t.Errorf("claims = %+v, want the issued identity", claims)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "another-secret-another-secret-abc"); err == nil {
		t.Fatal("ParseJWT accepted a token signed with a different secret")
	}
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Fatal("ParseJWT accepted an expired token")
	}
}

func TestParseJWTRejectsForeignSigningMethod(t *testing.T) {
	// Same secret, different HMAC variant: must fail the method pin, not
	// verify as a sibling algorithm.
	claims := &Claims{
		UserID: 11,
		Role:   model.Admin,
		Email:  "t@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Fatal("ParseJWT accepted an HS512 token")
	}
}
