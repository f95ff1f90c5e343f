package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed at 12 rounds. The work factor is a deliberate
// security/performance trade-off and is not configurable.
const bcryptCost = 12

// HashPassword hashes a plaintext password with a per-account random salt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
