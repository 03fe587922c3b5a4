package util

import (
	"flashquiz_backend/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 7}, Name: "alice", Role: model.Admin}

	token, err := GenerateJWT(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("ParseJWT() error = %v", err)
	}
	if claims.UserID != 7 || claims.Name != "alice" || claims.Role != model.Admin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseJWTRejects(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}, Name: "bob", Role: model.RoleUser}
	valid, _ := GenerateJWT(user, "secret", time.Hour)
	expired, _ := GenerateJWT(user, "secret", -time.Minute)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: valid, secret: "other"},
		{name: "expired", token: expired, secret: "secret"},
		{name: "alg none", token: unsigned, secret: "secret"},
		{name: "garbage", token: "not-a-token", secret: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJWT(tt.token, tt.secret); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMustParseUint(t *testing.T) {
	tests := map[string]uint{"12": 12, "0": 0, "": 0, "-3": 0, "abc": 0}
	for in, want := range tests {
		if got := MustParseUint(in); got != want {
			t.Errorf("MustParseUint(%q) = %d, want %d", in, got, want)
		}
	}
}
