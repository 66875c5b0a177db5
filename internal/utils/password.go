package utils

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};:'",.<>?/\\|` + "`" + `~]`)
)

// ValidatePassword checks the password policy and returns every violation:
// at least 8 characters, one uppercase letter, one number, one special
// character.
func ValidatePassword(password string) []string {
	var errors []string

	if len(password) < 8 {
		errors = append(errors, "Password must be at least 8 characters long.")
	}
	if !upperRe.MatchString(password) {
		errors = append(errors, "Password must contain at least one uppercase letter.")
	}
	if !digitRe.MatchString(password) {
		errors = append(errors, "Password must contain at least one number.")
	}
	if !specialRe.MatchString(password) {
		errors = append(errors, "Password must contain at least one special character.")
	}

	return errors
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
