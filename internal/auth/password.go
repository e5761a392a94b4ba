package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the adaptive work factor used when the existing
// production hashes were generated; raising it only affects new hashes.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// hash. It never returns an error on mismatch.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
