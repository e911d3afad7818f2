package password

import "golang.org/x/crypto/bcrypt"

// Hash hashes a plaintext password using bcrypt
func Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// MustHash hashes a plaintext password and panics on failure.
// Used only for seeding the fixed demo fixture at startup.
func MustHash(plaintext string) string {
	hashed, err := Hash(plaintext)
	if err != nil {
		panic(err)
	}
	return hashed
}

// Verify compares a plaintext password with a bcrypt hash
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
