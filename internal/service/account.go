package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/mohammedsalick/FestFusion/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	repo ports.AccountRepo
}

func NewAccountService(repo ports.AccountRepo) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.Account, error) {
	return s.signUp(ctx, input, false)
}

// SignUpFirstAdmin bootstraps the very first account as an admin. Once any
// account exists the endpoint is closed for good.
func (s *AccountService) SignUpFirstAdmin(ctx context.Context, input domain.SignUpInput) (*domain.Account, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		return nil, domain.ErrAdminExists
	}
	return s.signUp(ctx, input, true)
}

func (s *AccountService) signUp(ctx context.Context, input domain.SignUpInput, isAdmin bool) (*domain.Account, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.CollegeID) == "" {
		return nil, fmt.Errorf("%w: college_id is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        domain.NormalizeEmail(input.Email),
		PasswordHash: string(hash),
		CollegeID:    input.CollegeID,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// Authenticate checks credentials and returns the account profile. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.repo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return account, nil
}
