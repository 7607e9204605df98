package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
	"github.com/tsepo/luctreport/internal/pkg/auth"
)

// mockUserStore is a hand-rolled UserStore for service tests.
type mockUserStore struct {
	createFn     func(ctx context.Context, user *models.User) (int64, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*models.User, error)

	createdUser *models.User
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) (int64, error) {
	m.createdUser = user
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return 1, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, apperrors.ErrUserNotFound
}

// mockTokenIssuer returns a fixed token.
type mockTokenIssuer struct {
	token string
	err   error
}

func (m *mockTokenIssuer) GenerateToken(user *models.User) (string, error) {
	return m.token, m.err
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:    "new@luct.ac.ls",
		Password: "secret123",
		Name:     "New User",
		Role:     "student",
		Stream:   "BIT",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	store := &mockUserStore{}
	svc := NewAuthService(store, &mockTokenIssuer{token: "t"})

	id, err := svc.Register(context.Background(), validRegisterRequest())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}

	if store.createdUser == nil {
		t.Fatal("expected user to be stored")
	}
	if store.createdUser.Password == "secret123" {
		t.Error("password must not be stored in plaintext")
	}
	if !auth.CheckPassword(store.createdUser.Password, "secret123") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(&mockUserStore{}, &mockTokenIssuer{token: "t"})

	cases := []struct {
		name   string
		mutate func(r *dto.RegisterRequest)
	}{
		{"missing email", func(r *dto.RegisterRequest) { r.Email = "" }},
		{"malformed email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "abc" }},
		{"missing name", func(r *dto.RegisterRequest) { r.Name = "  " }},
		{"unknown role", func(r *dto.RegisterRequest) { r.Role = "admin" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegisterRequest()
			tc.mutate(req)
			if _, err := svc.Register(context.Background(), req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want validation failure", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &mockUserStore{
		createFn: func(ctx context.Context, user *models.User) (int64, error) {
			return 0, apperrors.ErrEmailAlreadyExists
		},
	}
	svc := NewAuthService(store, &mockTokenIssuer{token: "t"})

	if _, err := svc.Register(context.Background(), validRegisterRequest()); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	store := &mockUserStore{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID:       3,
				Email:    email,
				Password: hash,
				Name:     "Prof. PRL User",
				Role:     models.RolePrincipalLecturer,
				Stream:   "BIT",
			}, nil
		},
	}
	svc := NewAuthService(store, &mockTokenIssuer{token: "signed-token"})

	user, token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "prl@luct.ac.ls",
		Password: "password",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != 3 {
		t.Errorf("user.ID = %d, want 3", user.ID)
	}
	if token != "signed-token" {
		t.Errorf("token = %q", token)
	}
}

// A missing user and a wrong password must be indistinguishable to callers.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	hash, err := auth.HashPassword("password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	missing := &mockUserStore{}
	wrongPassword := &mockUserStore{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, Password: hash}, nil
		},
	}

	for name, store := range map[string]*mockUserStore{
		"unknown email":  missing,
		"wrong password": wrongPassword,
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewAuthService(store, &mockTokenIssuer{token: "t"})
			_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
				Email:    "someone@luct.ac.ls",
				Password: "not-the-password",
			})
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Errorf("error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	store := &mockUserStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			if id != 5 {
				return nil, apperrors.ErrUserNotFound
			}
			return &models.User{ID: 5, Email: "pl@luct.ac.ls", Role: models.RoleProgramLeader}, nil
		},
	}
	svc := NewAuthService(store, &mockTokenIssuer{token: "t"})

	user, err := svc.GetProfile(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if user.Email != "pl@luct.ac.ls" {
		t.Errorf("Email = %q", user.Email)
	}

	if _, err := svc.GetProfile(context.Background(), 99); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}
