package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"tripmood/internal/models/db_models"
	"tripmood/internal/models/request_models"
	"tripmood/pkg/utils"
)

// memoryAccountRepo keeps accounts in a map so credential flows can be
// exercised without a database.
type memoryAccountRepo struct {
	byEmail map[string]*db_models.Account
}

func newMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{byEmail: make(map[string]*db_models.Account)}
}

func (m *memoryAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	m.byEmail[account.Email] = account
	return nil
}

func (m *memoryAccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	m.byEmail[account.Email] = account
	return nil
}

func (m *memoryAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, acc := range m.byEmail {
		if acc.ID.String() == id {
			return acc, nil
		}
	}
	return nil, nil
}

func (m *memoryAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return m.byEmail[email], nil
}

func (m *memoryAccountRepo) FindByGoogleId(ctx context.Context, googleID string) (*db_models.Account, error) {
	for _, acc := range m.byEmail {
		if acc.GoogleID == googleID {
			return acc, nil
		}
	}
	return nil, nil
}

func (m *memoryAccountRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(m.byEmail)), nil
}

func (m *memoryAccountRepo) ListAll(ctx context.Context, page, pageSize int) ([]db_models.Account, error) {
	var out []db_models.Account
	for _, acc := range m.byEmail {
		out = append(out, *acc)
	}
	return out, nil
}

func TestSignUpThenLogin(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := NewAccountService(repo, nil, nil)
	ctx := context.Background()

	created, err := svc.SignUp(ctx, request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "hunter22",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if created.Token == "" || created.Role != db_models.RoleUser {
		t.Fatalf("unexpected signup response: %+v", created)
	}

	// the stored hash must never be the plain password
	if repo.byEmail["asha@example.com"].PasswordHash == "hunter22" {
		t.Fatal("password stored in plain text")
	}

	logged, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "asha@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.Token == "" || logged.Email != "asha@example.com" {
		t.Fatalf("unexpected login response: %+v", logged)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := NewAccountService(repo, nil, nil)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "hunter22",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, err := svc.Login(ctx, request_models.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestLoginRejectsGoogleOnlyAccount(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := NewAccountService(repo, nil, nil)
	ctx := context.Background()

	if _, err := svc.LoginWithGoogle(ctx, request_models.GoogleLoginRequest{
		GoogleID: "g-123",
		Email:    "g@example.com",
		Name:     "G",
	}); err != nil {
		t.Fatalf("google login failed: %v", err)
	}

	_, err := svc.Login(ctx, request_models.LoginRequest{Email: "g@example.com", Password: "anything"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for a google-only account, got %v", err)
	}
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := NewAccountService(repo, nil, nil)
	ctx := context.Background()

	req := request_models.SignUpRequest{DisplayName: "Asha", Email: "asha@example.com", Password: "hunter22"}
	if _, err := svc.SignUp(ctx, req); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, err := svc.SignUp(ctx, req)
	if !errors.Is(err, utils.ErrEmailAlreadyInUse) {
		t.Fatalf("expected email conflict, got %v", err)
	}
}
