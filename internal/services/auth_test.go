package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/banglanlp/dialect-eval-backend/internal/services"
)

func newStaffAuthService(t *testing.T, ttl time.Duration) (services.StaffAuthService, *testFixtures) {
	t.Helper()
	f := newFixtures(t)
	svc := services.NewStaffAuthService(f.db, f.log, f.staff, "test-secret", ttl)
	return svc, f
}

func TestStaffLoginAndValidate(t *testing.T) {
	svc, _ := newStaffAuthService(t, time.Hour)
	ctx := context.Background()

	created, err := svc.CreateStaff(ctx, "Staff@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}
	if created.Email != "staff@example.com" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}

	token, err := svc.Login(ctx, "staff@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	user, err := svc.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("token resolved to wrong user: %s != %s", user.ID, created.ID)
	}
}

func TestStaffLoginWrongPassword(t *testing.T) {
	svc, _ := newStaffAuthService(t, time.Hour)
	ctx := context.Background()

	if _, err := svc.CreateStaff(ctx, "staff@example.com", "hunter22"); err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}

	if _, err := svc.Login(ctx, "staff@example.com", "wrong"); !errors.Is(err, services.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestStaffLoginUnknownEmail(t *testing.T) {
	svc, _ := newStaffAuthService(t, time.Hour)

	if _, err := svc.Login(context.Background(), "nobody@example.com", "whatever"); !errors.Is(err, services.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestStaffTokenExpires(t *testing.T) {
	svc, _ := newStaffAuthService(t, -time.Minute)
	ctx := context.Background()

	if _, err := svc.CreateStaff(ctx, "staff@example.com", "hunter22"); err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}
	token, err := svc.Login(ctx, "staff@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.ValidateToken(ctx, token); !errors.Is(err, services.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc, _ := newStaffAuthService(t, time.Hour)

	if _, err := svc.ValidateToken(context.Background(), "not.a.jwt"); !errors.Is(err, services.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
