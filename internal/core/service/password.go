package service

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the original deployment. Raising it invalidates no
// stored hashes (bcrypt encodes the cost in the hash) but slows logins.
const bcryptCost = 10

// HashPassword produces a salted bcrypt hash of the plaintext. Equal inputs
// hash to different values across calls.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// A mismatch is not an error; comparison is constant-time inside bcrypt.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
