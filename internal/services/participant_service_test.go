package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"holiday-api/internal/models/request_models"
	"holiday-api/internal/testutil"
	"holiday-api/pkg/utils"
)

func signUp(email string) request_models.SignUpRequest {
	return request_models.SignUpRequest{
		FirstName: "Paul",
		LastName:  "Martin",
		Email:     email,
		Password:  "s3cret-pass",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.participants.Register(ctx, signUp("  Paul@Example.com "))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if p.Email != "paul@example.com" {
		t.Errorf("Expected normalized email, got %q", p.Email)
	}
	if p.PasswordHash == "" || p.PasswordHash == "s3cret-pass" {
		t.Error("Password must be stored hashed")
	}

	if _, err := f.participants.Register(ctx, signUp("PAUL@example.com")); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("Expected ErrEmailAlreadyExists, got %v", err)
	}

	token, err := f.participants.Login(ctx, request_models.LoginRequest{Email: "paul@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	claims, err := utils.NewJWTManager("test-secret", time.Hour).ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != p.ID.String() {
		t.Errorf("Expected token for %s, got %s", p.ID, claims.UserID)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.participants.Register(ctx, signUp("paul@example.com")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{"wrong password", "paul@example.com", "nope"},
		{"unknown email", "nobody@example.com", "s3cret-pass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.participants.Login(ctx, request_models.LoginRequest{Email: tt.email, Password: tt.pass})
			if !errors.Is(err, utils.ErrInvalidCredentials) {
				t.Errorf("Expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestSignInExternal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.participants.SignInExternal(ctx, "google", "gina@example.com", "Gina", "Old"); err != nil {
		t.Fatalf("SignInExternal returned error: %v", err)
	}
	if _, err := f.participants.SignInExternal(ctx, "google", "GINA@example.com", "Gina", "New"); err != nil {
		t.Fatalf("SignInExternal returned error: %v", err)
	}

	n, err := f.participants.CountParticipants(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Expected a single participant, got %d (%v)", n, err)
	}

	// External accounts carry no password.
	if _, err := f.participants.Login(ctx, request_models.LoginRequest{Email: "gina@example.com", Password: ""}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := f.participants.SignInExternal(ctx, "", "x@example.com", "X", "Y"); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestListParticipantsForHoliday(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateParticipant(t, f.db, "Paul")
	pending := testutil.CreateParticipant(t, f.db, "Pia")
	free := testutil.CreateParticipant(t, f.db, "Fred")
	h := f.createHoliday(t, owner)
	testutil.Invite(t, f.db, h, pending, false)
	ctx := context.Background()

	members, err := f.participants.ListParticipantsByHoliday(ctx, h.ID)
	if err != nil {
		t.Fatalf("ListParticipantsByHoliday returned error: %v", err)
	}
	if len(members) != 1 || members[0].ID != owner.ID {
		t.Errorf("Expected only the owner, got %+v", members)
	}

	candidates, err := f.participants.ListParticipantsNotInHoliday(ctx, h.ID)
	if err != nil {
		t.Fatalf("ListParticipantsNotInHoliday returned error: %v", err)
	}
	if len(candidates) != 1 || candidates[0].ID != free.ID {
		t.Errorf("Expected only %s as candidate, got %+v", free.FirstName, candidates)
	}

	if _, err := f.participants.GetParticipant(ctx, h.ID); !errors.Is(err, utils.ErrParticipantNotFound) {
		t.Errorf("Expected ErrParticipantNotFound, got %v", err)
	}
}
