// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"stockroom/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the signed bearer token after a successful login.
type LoginOutput struct {
	Token string
}

// AuthUsecase defines the contract the delivery layer depends on for
// registration and login. All field validation happens behind this
// interface, before any store access.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
