package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher decides how passwords are stored and compared
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, supplied string) bool
}

// NewPasswordHasher returns the policy for mode: "plain" keeps passwords as
// given and compares them byte for byte, "bcrypt" stores bcrypt hashes.
func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case "plain":
		return plainHasher{}, nil
	case "bcrypt":
		return bcryptHasher{cost: bcrypt.DefaultCost}, nil
	}
	return nil, fmt.Errorf("unknown password hashing mode: %s", mode)
}

// plainHasher reproduces the legacy schema, which stores passwords unhashed
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Matches(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

type bcryptHasher struct {
	cost int
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (bcryptHasher) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
