// Package password hashes and verifies account passwords with bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"school_backend/internal/shared/record"
)

// MinLength はパスワードの最低文字数を定義します。
const MinLength = 8

// dummyHash is compared against when the account does not exist so that an
// unknown email costs the same bcrypt work as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// ErrTooShort is returned by Hash when the password is below MinLength.
var ErrTooShort = record.InvalidState("password must be at least %d characters long", MinLength)

// Hash validates the plaintext and returns its bcrypt hash at cost.
func Hash(plain string, cost int) (string, error) {
	if len(plain) < MinLength {
		return "", ErrTooShort
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Matches reports whether plain matches hashed.
func Matches(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// Burn runs a comparison against a fixed hash and discards the result.
func Burn(plain string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
}
