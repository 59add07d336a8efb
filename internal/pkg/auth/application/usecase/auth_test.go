package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/persistence/repository/adapter"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/token"
)

func TestRegisterThenLogin(t *testing.T) {
	accounts := adapter.NewMemoryAccountRepository()
	register := NewRegisterUseCase(accounts)
	login := NewLoginUseCase(accounts, token.NewService("test-secret", time.Hour))

	account, err := register.Execute(context.Background(), RegisterInput{
		Name:     "Op",
		Email:    "Op@Example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if account.Email != "op@example.com" {
		t.Fatalf("email not normalized: %q", account.Email)
	}
	if account.PasswordHash == "hunter2hunter2" {
		t.Fatal("password stored in the clear")
	}

	out, err := login.Execute(context.Background(), LoginInput{Email: "op@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.Token == "" || out.Account.ID != account.ID {
		t.Fatalf("unexpected login output %+v", out)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	accounts := adapter.NewMemoryAccountRepository()
	register := NewRegisterUseCase(accounts)

	in := RegisterInput{Name: "Op", Email: "op@example.com", Password: "hunter2hunter2"}
	if _, err := register.Execute(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := register.Execute(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	register := NewRegisterUseCase(adapter.NewMemoryAccountRepository())
	if _, err := register.Execute(context.Background(), RegisterInput{
		Name: "Op", Email: "op@example.com", Password: "short",
	}); err == nil {
		t.Fatal("expected validation error for short password")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	accounts := adapter.NewMemoryAccountRepository()
	register := NewRegisterUseCase(accounts)
	login := NewLoginUseCase(accounts, token.NewService("test-secret", time.Hour))

	if _, err := register.Execute(context.Background(), RegisterInput{
		Name: "Op", Email: "op@example.com", Password: "hunter2hunter2",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := login.Execute(context.Background(), LoginInput{Email: "op@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := login.Execute(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
