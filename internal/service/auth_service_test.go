package service

import (
	"errors"
	"flashquiz_backend/internal/config"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"testing"
	"time"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
	activity := NewActivityService(repository.NewActivityLogRepository(db))
	svc := NewAuthService(repository.NewUserRepository(db), activity, cfg)

	user := &model.User{Name: "carol", Email: "carol@example.com", Password: "password123"}
	if err := svc.Register(user); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Password == "password123" || user.Role != model.RoleUser {
		t.Errorf("password not hashed or role not set: %+v", user)
	}

	dupEmail := &model.User{Name: "carol2", Email: "carol@example.com", Password: "password123"}
	if err := svc.Register(dupEmail); !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("duplicate email err = %v", err)
	}
	dupName := &model.User{Name: "carol", Email: "other@example.com", Password: "password123"}
	if err := svc.Register(dupName); !errors.Is(err, util.ErrNameTaken) {
		t.Errorf("duplicate name err = %v", err)
	}

	if _, _, err := svc.Login("carol@example.com", "wrong-password"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}

	token, logged, err := svc.Login("carol@example.com", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	if err != nil || claims.UserID != user.ID {
		t.Fatalf("ParseJWT() = %+v, %v", claims, err)
	}
	if logged.LastLogin == nil {
		t.Error("last login not set")
	}

	svc.Logout(user.ID)
	entries, err := activity.List(user.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d activity entries, want 2", len(entries))
	}
	actions := map[model.ActivityAction]bool{entries[0].Action: true, entries[1].Action: true}
	if !actions[model.ActionLogin] || !actions[model.ActionLogout] {
		t.Errorf("activity = %+v", entries)
	}
}
