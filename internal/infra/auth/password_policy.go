package auth

import (
	"fmt"
	"strings"
	"unicode"

	"taskhub/config"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/service"
)

// specialChars is the fixed special-character set accepted by the policy.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// passwordPolicy is a concrete implementation of the PasswordPolicy
// interface. Rules are checked in a fixed order and the first failing rule
// is reported, so violations are deterministic.
type passwordPolicy struct {
	cfg config.PasswordPolicyConfig
}

// NewPasswordPolicy is the constructor for passwordPolicy.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	policyCfg := config.DefaultPasswordPolicy()
	if cfg != nil && cfg.PasswordPolicy != nil {
		policyCfg = cfg.PasswordPolicy
	}

	return &passwordPolicy{cfg: *policyCfg}
}

// Validate checks the password against every enabled rule, in order:
// min length, max length, uppercase, lowercase, digit, special character.
func (p *passwordPolicy) Validate(password string) error {
	if len(password) < p.cfg.MinLength {
		return p.violation(fmt.Sprintf("Password must be at least %d characters long", p.cfg.MinLength))
	}
	if len(password) > p.cfg.MaxLength {
		return p.violation(fmt.Sprintf("Password must be at most %d characters long", p.cfg.MaxLength))
	}
	if p.cfg.RequireUppercase && !containsFunc(password, unicode.IsUpper) {
		return p.violation("Password must contain at least one uppercase letter")
	}
	if p.cfg.RequireLowercase && !containsFunc(password, unicode.IsLower) {
		return p.violation("Password must contain at least one lowercase letter")
	}
	if p.cfg.RequireNumbers && !containsFunc(password, unicode.IsDigit) {
		return p.violation("Password must contain at least one number")
	}
	if p.cfg.RequireSpecial && !strings.ContainsAny(password, specialChars) {
		return p.violation("Password must contain at least one special character")
	}

	return nil
}

func (p *passwordPolicy) violation(reason string) error {
	return domainerrors.ErrPasswordPolicy.WithDetails(reason)
}

func containsFunc(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}

	return false
}
