package usecase

import (
	"context"

	"taskhub/internal/domain/entity"
)

// UpdateProfileInput defines the mutable profile fields. Nil pointers leave
// the corresponding field unchanged.
type UpdateProfileInput struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

// UserUsecase defines the interface for profile business operations on the
// authenticated account.
type UserUsecase interface {
	// GetProfile returns the account identified by userID.
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)

	// UpdateProfile applies the provided changes. An email change re-checks
	// uniqueness; a password change goes through the password policy and
	// the hasher.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.User, error)

	// DeleteAccount removes the account. Owned tasks are removed by the
	// storage cascade.
	DeleteAccount(ctx context.Context, userID int64) error
}
