package service

import (
	"context"
	"testing"

	"github.com/mohammedsalick/FestFusion/internal/domain"
	"github.com/mohammedsalick/FestFusion/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validSignUpInput() domain.SignUpInput {
	return domain.SignUpInput{
		Username:  "alice",
		Email:     "Alice@X.com",
		Password:  "s3cret-pw",
		CollegeID: "clg-42",
	}
}

func TestAccountService_SignUp_Success(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo)

	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, account *domain.Account) {
			assert.Equal(t, "alice@x.com", account.Email)
			assert.False(t, account.IsAdmin)
			assert.NotEqual(t, "s3cret-pw", account.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(account.PasswordHash), []byte("s3cret-pw")))
		}).
		Return(nil)

	account, err := svc.SignUp(context.Background(), validSignUpInput())

	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "alice", account.Username)
}

func TestAccountService_SignUp_MissingFields(t *testing.T) {
	svc := NewAccountService(nil)

	cases := []struct {
		name   string
		mutate func(*domain.SignUpInput)
	}{
		{"username", func(in *domain.SignUpInput) { in.Username = "" }},
		{"email", func(in *domain.SignUpInput) { in.Email = "  " }},
		{"password", func(in *domain.SignUpInput) { in.Password = "" }},
		{"college_id", func(in *domain.SignUpInput) { in.CollegeID = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validSignUpInput()
			tc.mutate(&input)

			_, err := svc.SignUp(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAccountService_SignUp_EmailTaken(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo)

	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.SignUp(context.Background(), validSignUpInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAccountService_SignUpFirstAdmin_Success(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo)

	accountRepo.EXPECT().Count(mock.Anything).Return(0, nil)
	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	account, err := svc.SignUpFirstAdmin(context.Background(), validSignUpInput())

	require.NoError(t, err)
	assert.True(t, account.IsAdmin)
}

func TestAccountService_SignUpFirstAdmin_AlreadyBootstrapped(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo)

	accountRepo.EXPECT().Count(mock.Anything).Return(3, nil)

	_, err := svc.SignUpFirstAdmin(context.Background(), validSignUpInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdminExists)
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pw"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.Account{
		ID:           "a1",
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: string(hash),
	}
	accountRepo.EXPECT().GetByEmail(mock.Anything, "alice@x.com").Return(stored, nil)

	account, err := svc.Authenticate(context.Background(), " Alice@X.com ", "s3cret-pw")

	require.NoError(t, err)
	assert.Equal(t, "a1", account.ID)
}

func TestAccountService_Authenticate_WrongPassword(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pw"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.Account{Email: "alice@x.com", PasswordHash: string(hash)}
	accountRepo.EXPECT().GetByEmail(mock.Anything, "alice@x.com").Return(stored, nil)

	_, err = svc.Authenticate(context.Background(), "alice@x.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAccountService_Authenticate_UnknownEmail(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(accountRepo)

	accountRepo.EXPECT().GetByEmail(mock.Anything, "nobody@x.com").
		Return(nil, domain.ErrAccountNotFound)

	_, err := svc.Authenticate(context.Background(), "nobody@x.com", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
