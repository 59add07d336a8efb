package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	auth "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/domain"
	repository "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/port"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/token"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Account *auth.Account
	Token   string
}

// LoginUseCase checks credentials and issues a session token.
type LoginUseCase struct {
	Accounts repository.AccountRepository
	Tokens   *token.Service
}

func NewLoginUseCase(accounts repository.AccountRepository, tokens *token.Service) *LoginUseCase {
	return &LoginUseCase{Accounts: accounts, Tokens: tokens}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	account, err := uc.Accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	tok, err := uc.Tokens.Issue(account.ID)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{Account: account, Token: tok}, nil
}
