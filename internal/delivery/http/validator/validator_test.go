package validator

import (
	"testing"

	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestValidator_UsernameRule(t *testing.T) {
	v := New()

	valid := []string{"alice", "alice_01", "a-b-c", "ABC123"}
	for _, username := range valid {
		input := &usecase.RegisterInput{
			Email:    "a@example.com",
			Username: username,
			Password: "Sup3rSecret!",
		}
		assert.NoError(t, v.Validate(input), "username %q", username)
	}

	invalid := []string{"a lice", "alice@home", "alice!", "布丁狗"}
	for _, username := range invalid {
		input := &usecase.RegisterInput{
			Email:    "a@example.com",
			Username: username,
			Password: "Sup3rSecret!",
		}
		err := v.Validate(input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "username %q", username)
	}
}

func TestValidator_ViolationCarriesDetails(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.RegisterInput{})

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.NotEmpty(t, appErr.Details())
}
