package services

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"tripmood/internal/models/db_models"
	"tripmood/internal/models/request_models"
	"tripmood/internal/models/response_models"
	"tripmood/internal/repositories"
	"tripmood/pkg/utils"
)

type AccountServiceInterface interface {
	// LoginWithGoogle upserts the Google identity and issues a JWT.
	LoginWithGoogle(ctx context.Context, req request_models.GoogleLoginRequest) (*response_models.LoginResponse, error)
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.LoginResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
	ListAccounts(ctx context.Context, page, pageSize int) ([]response_models.AccountResponse, error)
	UpdateRole(ctx context.Context, req request_models.UpdateRoleRequest) error
	AdminStats(ctx context.Context) (*response_models.AdminStats, error)
	// BootstrapRoot promotes the ADMIN_EMAILS accounts to root at startup.
	BootstrapRoot(ctx context.Context) error
}

type AccountService struct {
	accountRepo   repositories.AccountRepository
	tripRepo      repositories.TripRepository
	planCacheRepo repositories.PlanCacheRepository
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tripRepo repositories.TripRepository,
	planCacheRepo repositories.PlanCacheRepository,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:   accountRepo,
		tripRepo:      tripRepo,
		planCacheRepo: planCacheRepo,
	}
}

func (a *AccountService) LoginWithGoogle(ctx context.Context, req request_models.GoogleLoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByGoogleId(ctx, req.GoogleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if account == nil {
		account, err = a.accountRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	if account == nil {
		account = &db_models.Account{
			Name:     req.Name,
			Email:    req.Email,
			GoogleID: req.GoogleID,
			Role:     roleForEmail(req.Email),
		}
		if err := a.accountRepo.Insert(ctx, account); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else if account.GoogleID != req.GoogleID {
		account.GoogleID = req.GoogleID
		if err := a.accountRepo.Update(ctx, account); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	return &response_models.LoginResponse{
		Token: token,
		Role:  account.Role,
		Email: account.Email,
		Name:  account.Name,
	}, nil
}

func (a *AccountService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.LoginResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyInUse
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         roleForEmail(req.Email),
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	return &response_models.LoginResponse{
		Token: token,
		Role:  account.Role,
		Email: account.Email,
		Name:  account.Name,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// Google-only accounts have no stored hash and cannot password-login
	if account == nil || account.PasswordHash == "" {
		return nil, utils.ErrInvalidCredentials
	}
	if utils.ComparePasswords(account.PasswordHash, req.Password) != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	return &response_models.LoginResponse{
		Token: token,
		Role:  account.Role,
		Email: account.Email,
		Name:  account.Name,
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}

func (a *AccountService) ListAccounts(ctx context.Context, page, pageSize int) ([]response_models.AccountResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	accounts, err := a.accountRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, response_models.AccountResponse{
			ID:    acc.ID.String(),
			Name:  acc.Name,
			Email: acc.Email,
			Role:  acc.Role,
		})
	}
	return out, nil
}

func (a *AccountService) UpdateRole(ctx context.Context, req request_models.UpdateRoleRequest) error {
	switch req.Role {
	case db_models.RoleUser, db_models.RoleAdmin, db_models.RoleRoot:
	default:
		return utils.ErrInvalidRole
	}
	if _, err := uuid.Parse(req.AccountID); err != nil {
		return utils.ErrInvalidInput
	}

	account, err := a.accountRepo.FindById(ctx, req.AccountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	account.Role = req.Role
	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) AdminStats(ctx context.Context) (*response_models.AdminStats, error) {
	accounts, err := a.accountRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	trips, err := a.tripRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	plans, err := a.planCacheRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdminStats{
		TotalAccounts: accounts,
		TotalTrips:    trips,
		CachedPlans:   plans,
	}, nil
}

func (a *AccountService) BootstrapRoot(ctx context.Context) error {
	for _, email := range adminEmails() {
		account, err := a.accountRepo.FindByEmail(ctx, email)
		if err != nil {
			return utils.ErrDatabaseError
		}

		if account == nil {
			password := os.Getenv("ADMIN_BOOTSTRAP_PASSWORD")
			if password == "" {
				generated, err := utils.GenerateSecureToken(16)
				if err != nil {
					return err
				}
				password = generated
				log.Printf("generated bootstrap password for %s: %s", email, password)
			}
			hash, err := utils.HashPassword(password)
			if err != nil {
				return err
			}
			account = &db_models.Account{
				Name:         "Root",
				Email:        email,
				PasswordHash: hash,
				Role:         db_models.RoleRoot,
			}
			if err := a.accountRepo.Insert(ctx, account); err != nil {
				return utils.ErrDatabaseError
			}
			continue
		}

		if account.Role != db_models.RoleRoot {
			account.Role = db_models.RoleRoot
			if err := a.accountRepo.Update(ctx, account); err != nil {
				return utils.ErrDatabaseError
			}
		}
	}
	return nil
}

func roleForEmail(email string) string {
	for _, admin := range adminEmails() {
		if strings.EqualFold(admin, email) {
			return db_models.RoleRoot
		}
	}
	return db_models.RoleUser
}

func adminEmails() []string {
	raw := os.Getenv("ADMIN_EMAILS")
	if raw == "" {
		return nil
	}
	var out []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
