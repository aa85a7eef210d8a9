package models

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetUserByEmail retrieves a user by their (lowercased) email.
func GetUserByEmail(email string, db *gorm.DB) (User, error) {
	var user User
	if result := db.First(&user, "email = ?", strings.ToLower(email)); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return user, errors.New("user not found")
		}
		return user, result.Error
	}
	return user, nil
}

// SanitizeEmail normalizes the email before storage and lookups.
func (u *User) SanitizeEmail() {
	u.Email = strings.ToLower(u.Email)
}

// HashPassword replaces the plaintext password with its bcrypt digest.
func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), 8)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a candidate plaintext against the stored digest.
func (u *User) CheckPassword(plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain))
}
