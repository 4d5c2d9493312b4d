package services

import (
	"errors"
	"testing"

	"cafe-counter-api/models"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.accounts.Register("alice", "secret", "555-0100")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("new accounts must start as Customer, got %q", user.Role)
	}
	if user.FavoriteItems != "" {
		t.Errorf("new accounts must start with empty favorites, got %q", user.FavoriteItems)
	}
	if user.PasswordHash == "secret" {
		t.Error("password stored in the clear")
	}

	if _, err := env.accounts.Register("alice", "other", ""); !errors.Is(err, models.ErrDuplicateLogin) {
		t.Errorf("duplicate login error = %v, want ErrDuplicateLogin", err)
	}
}

func TestAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.accounts.Register("alice", "secret", ""); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		login    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", login: "alice", password: "secret", wantErr: nil},
		{name: "wrong password", login: "alice", password: "nope", wantErr: models.ErrInvalidCredentials},
		{name: "unknown login", login: "mallory", password: "secret", wantErr: models.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.accounts.Authenticate(tt.login, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Authenticate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateProfileSelf(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.accounts.Register("alice", "secret", "555-0100"); err != nil {
		t.Fatal(err)
	}

	phone := "555-0199"
	favs := "Latte, Bagel"
	user, err := env.accounts.UpdateProfile(aliceSession, "alice", ProfileUpdate{
		Phone:         &phone,
		FavoriteItems: &favs,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if user.Phone != phone || user.FavoriteItems != favs {
		t.Errorf("profile not updated: phone=%q favs=%q", user.Phone, user.FavoriteItems)
	}
}

func TestUpdateProfilePasswordMismatchAbortsWithoutMutation(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.accounts.Register("alice", "secret", ""); err != nil {
		t.Fatal(err)
	}

	newPass, confirm, phone := "changed", "different", "555-0123"
	_, err := env.accounts.UpdateProfile(aliceSession, "alice", ProfileUpdate{
		Phone:           &phone,
		Password:        &newPass,
		PasswordConfirm: &confirm,
	})
	if !errors.Is(err, models.ErrPasswordMismatch) {
		t.Fatalf("UpdateProfile() error = %v, want ErrPasswordMismatch", err)
	}

	// The failed call must leave every field untouched, phone included.
	user, err := env.accounts.Profile("alice")
	if err != nil {
		t.Fatal(err)
	}
	if user.Phone == phone {
		t.Error("phone was mutated by an aborted update")
	}
	if _, err := env.accounts.Authenticate("alice", "secret"); err != nil {
		t.Errorf("old password no longer works: %v", err)
	}
}

func TestUpdateProfileAuthorization(t *testing.T) {
	env := newTestEnv(t)
	for _, login := range []string{"alice", "bob"} {
		if _, err := env.accounts.Register(login, "secret", ""); err != nil {
			t.Fatal(err)
		}
	}
	role := models.RoleEmployee
	phone := "555-0142"

	tests := []struct {
		name    string
		sess    models.Session
		target  string
		upd     ProfileUpdate
		wantErr error
	}{
		{
			name:    "customer cannot edit another user",
			sess:    aliceSession,
			target:  "bob",
			upd:     ProfileUpdate{Phone: &phone},
			wantErr: models.ErrUnauthorized,
		},
		{
			name:    "customer cannot change own role",
			sess:    aliceSession,
			target:  "alice",
			upd:     ProfileUpdate{Role: &role},
			wantErr: models.ErrUnauthorized,
		},
		{
			name:   "manager promotes another user",
			sess:   managerSession,
			target: "bob",
			upd:    ProfileUpdate{Role: &role},
		},
		{
			name:    "manager targeting unknown login",
			sess:    managerSession,
			target:  "ghost",
			upd:     ProfileUpdate{Phone: &phone},
			wantErr: models.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := env.accounts.UpdateProfile(tt.sess, tt.target, tt.upd)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UpdateProfile() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && tt.upd.Role != nil && user.Role != *tt.upd.Role {
				t.Errorf("role = %q, want %q", user.Role, *tt.upd.Role)
			}
		})
	}
}

func TestUpdateProfileUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.accounts.Register("alice", "secret", ""); err != nil {
		t.Fatal(err)
	}
	bad := models.UserRole("Wizard")
	if _, err := env.accounts.UpdateProfile(managerSession, "alice", ProfileUpdate{Role: &bad}); !errors.Is(err, models.ErrUnknownRole) {
		t.Errorf("UpdateProfile() error = %v, want ErrUnknownRole", err)
	}
}
