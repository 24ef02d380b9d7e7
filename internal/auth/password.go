package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the 10 salt rounds the frontend's password policy was
// tuned against.
const bcryptCost = 10

// HashPassword returns a bcrypt hash of the plaintext with a fresh random
// salt embedded in the output. The plaintext is never stored or logged.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash. bcrypt
// recomputes with the embedded salt and compares in constant time.
func CheckPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
