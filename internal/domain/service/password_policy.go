package service

// PasswordPolicy defines the interface for structural password strength
// rules, applied to plaintext passwords at account creation and password
// change time. It is deliberately separate from PasswordHasher: the policy
// sees the plaintext once, the hasher owns all comparison.
type PasswordPolicy interface {
	// Validate returns nil when the password satisfies every enabled rule,
	// otherwise a domain error describing the first failing rule. Rule
	// order is fixed, so the reported violation is deterministic.
	Validate(password string) error
}
