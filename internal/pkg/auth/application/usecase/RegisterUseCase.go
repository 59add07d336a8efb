package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	auth "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/domain"
	repository "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/port"
)

const bcryptCost = 10

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUseCase creates an operator account with a bcrypt password hash.
type RegisterUseCase struct {
	Accounts repository.AccountRepository
}

func NewRegisterUseCase(accounts repository.AccountRepository) *RegisterUseCase {
	return &RegisterUseCase{Accounts: accounts}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, in RegisterInput) (*auth.Account, error) {
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.Accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	account, err := auth.NewAccount(auth.Account{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Accounts.Create(ctx, *account)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	account.ID = id
	return account, nil
}
