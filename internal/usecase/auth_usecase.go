// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskhub/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,min=3,max=50,username"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput defines the data required to log in. Username accepts either
// the account's username or its email address.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // Seconds until the token expires.
	User        *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account after uniqueness checks and password
	// policy validation.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login resolves credentials to an account and issues an access token.
	// "No such account" and "wrong password" yield the identical failure.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout is a no-op by construction: tokens are stateless and remain
	// valid until expiry. Kept so the HTTP surface matches clients'
	// expectations.
	Logout(ctx context.Context) error
}
