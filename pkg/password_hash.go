package pkg

import "golang.org/x/crypto/bcrypt"

// slow on purpose, the login path can afford it
const bcryptCost = 14

func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return BytesToString(hashBytes), nil
}

// CheckPasswordHash compares the plain password against the bcrypt hash,
// the cost is taken from the hash itself.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
