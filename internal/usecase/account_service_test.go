package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func validRegistration() RegisterInput {
	return RegisterInput{
		Email:       "jane@example.com",
		Password:    "s3cret",
		FirstName:   "Jane",
		LastName:    "Doe",
		Username:    "janedoe",
		DateOfBirth: date(1990, 5, 14),
	}
}

func TestRegister(t *testing.T) {
	r := newRig()
	ctx := context.Background()

	created, err := r.accounts.Register(ctx, validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Register() did not assign an id")
	}
	if !created.IsActive {
		t.Error("Register() account should be active")
	}
	if created.IsStaff || created.IsSuperuser {
		t.Error("Register() must not grant staff privileges")
	}
	if created.PasswordHash == "s3cret" {
		t.Error("Register() stored the plaintext password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newRig()
	ctx := context.Background()

	if _, err := r.accounts.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	in := validRegistration()
	in.Username = "otherjane"
	if _, err := r.accounts.Register(ctx, in); !errors.Is(err, ErrConflict) {
		t.Fatalf("Register() with taken email error = %v, want ErrConflict", err)
	}
}

func TestRegisterRequiredFields(t *testing.T) {
	r := newRig()
	ctx := context.Background()

	cases := map[string]func(*RegisterInput){
		"missing email":    func(in *RegisterInput) { in.Email = "" },
		"malformed email":  func(in *RegisterInput) { in.Email = "not-an-address" },
		"short password":   func(in *RegisterInput) { in.Password = "abcd" },
		"missing first":    func(in *RegisterInput) { in.FirstName = " " },
		"missing last":     func(in *RegisterInput) { in.LastName = "" },
		"missing username": func(in *RegisterInput) { in.Username = "" },
		"missing dob":      func(in *RegisterInput) { in.DateOfBirth = time.Time{} },
	}
	for name, mutate := range cases {
		in := validRegistration()
		mutate(&in)
		if _, err := r.accounts.Register(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: Register() error = %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestRegisterDateOfBirthRules(t *testing.T) {
	r := newRig()
	ctx := context.Background()
	now := date(2024, 6, 1)
	r.accounts.now = func() time.Time { return now }

	in := validRegistration()
	in.DateOfBirth = now.AddDate(0, 0, 1)
	if _, err := r.accounts.Register(ctx, in); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("future dob: error = %v, want ErrInvalidInput", err)
	}

	in = validRegistration()
	in.DateOfBirth = now.AddDate(-5, 0, 1) // one day short of five years
	if _, err := r.accounts.Register(ctx, in); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("under five years: error = %v, want ErrInvalidInput", err)
	}

	in = validRegistration()
	in.DateOfBirth = now.AddDate(-5, 0, -1)
	if _, err := r.accounts.Register(ctx, in); err != nil {
		t.Errorf("five years and a day: error = %v, want success", err)
	}
}

func TestRegisterResolvesFavorites(t *testing.T) {
	r := newRig()
	w := r.seedWorld(t)
	r.seedPlayer(t, w, "Vinicius Junior", w.home.ID)
	ctx := context.Background()

	in := validRegistration()
	in.CountryID = &w.nation.ID
	in.FavoriteTeams = []string{"Real Madrid"}
	in.FavoritePlayers = []string{"Vinicius Junior"}
	if _, err := r.accounts.Register(ctx, in); err != nil {
		t.Fatalf("Register() with valid favorites error = %v", err)
	}

	in = validRegistration()
	in.Email = "john@example.com"
	in.FavoriteTeams = []string{"No Such Club"}
	if _, err := r.accounts.Register(ctx, in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Register() with unknown favorite team error = %v, want ErrInvalidInput", err)
	}
}

func TestIssueTokenAndAuthenticate(t *testing.T) {
	r := newRig()
	ctx := context.Background()

	created, err := r.accounts.Register(ctx, validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	plaintext, err := r.accounts.IssueToken(ctx, "jane@example.com", "s3cret")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if plaintext == "" {
		t.Fatal("IssueToken() returned an empty token")
	}

	principal, err := r.accounts.Authenticate(ctx, plaintext)
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if principal.UserID != created.ID || principal.Email != created.Email {
		t.Errorf("Authenticate() principal = %+v, want user %d", principal, created.ID)
	}
	if principal.IsStaff {
		t.Error("Authenticate() principal should not be staff")
	}
}

func TestIssueTokenWrongCredentials(t *testing.T) {
	r := newRig()
	ctx := context.Background()

	if _, err := r.accounts.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := r.accounts.IssueToken(ctx, "jane@example.com", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("wrong password: error = %v, want ErrUnauthorized", err)
	}
	if _, err := r.accounts.IssueToken(ctx, "nobody@example.com", "s3cret"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unknown account: error = %v, want ErrUnauthorized", err)
	}
	if _, err := r.accounts.Authenticate(ctx, "deadbeef"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unknown token: error = %v, want ErrUnauthorized", err)
	}
}

func TestRevokeTokens(t *testing.T) {
	r := newRig()
	ctx := context.Background()

	created, err := r.accounts.Register(ctx, validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	plaintext, err := r.accounts.IssueToken(ctx, "jane@example.com", "s3cret")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if err := r.accounts.RevokeTokens(ctx, created.ID); err != nil {
		t.Fatalf("RevokeTokens() error = %v", err)
	}
	if _, err := r.accounts.Authenticate(ctx, plaintext); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Authenticate() after revoke error = %v, want ErrUnauthorized", err)
	}
}

func TestCreateSuperuser(t *testing.T) {
	r := newRig()
	ctx := context.Background()

	created, err := r.accounts.CreateSuperuser(ctx, "admin@example.com", "adm1n", "admin")
	if err != nil {
		t.Fatalf("CreateSuperuser() error = %v", err)
	}
	if !created.IsStaff || !created.IsSuperuser || !created.IsActive {
		t.Errorf("CreateSuperuser() flags = staff:%v super:%v active:%v, want all true",
			created.IsStaff, created.IsSuperuser, created.IsActive)
	}
}

func TestUpdateProfile(t *testing.T) {
	r := newRig()
	ctx := context.Background()

	created, err := r.accounts.Register(ctx, validRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	newFirst := "Janet"
	updated, err := r.accounts.UpdateProfile(ctx, created.ID, ProfilePatch{FirstName: &newFirst})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.FirstName != "Janet" {
		t.Errorf("UpdateProfile() first name = %q, want Janet", updated.FirstName)
	}
	if updated.LastName != "Doe" {
		t.Errorf("UpdateProfile() must keep untouched fields, last name = %q", updated.LastName)
	}

	empty := " "
	if _, err := r.accounts.UpdateProfile(ctx, created.ID, ProfilePatch{Username: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("UpdateProfile() empty username error = %v, want ErrInvalidInput", err)
	}
}
