package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the persisted account record.
type User struct {
	ID          uint           `gorm:"primarykey"`
	FirstName   string         `gorm:"not null"`
	LastName    string         `gorm:"not null"`
	Email       string         `gorm:"uniqueIndex;not null"`
	PhoneNumber string         `gorm:"uniqueIndex;not null"`
	Password    string         `gorm:"not null" json:"-"`
	DateOfBirth time.Time      `gorm:"type:date"`
	Age         int            `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// SetAge derives Age from DateOfBirth in whole years as of now.
// A zero date of birth yields zero.
func (u *User) SetAge(now time.Time) {
	if u.DateOfBirth.IsZero() || now.Before(u.DateOfBirth) {
		u.Age = 0
		return
	}

	dob := u.DateOfBirth.UTC()
	now = now.UTC()

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	u.Age = age
}

// UserDTO is the user shape returned across the service boundary.
type UserDTO struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Age         int       `json:"age"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateUserInput is the registration request.
type CreateUserInput struct {
	FirstName   string    `json:"first_name" validate:"required,max=100"`
	LastName    string    `json:"last_name" validate:"required,max=100"`
	Email       string    `json:"email" validate:"required,email"`
	PhoneNumber string    `json:"phone_number" validate:"required,e164"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
	Password    string    `json:"password" validate:"required,min=8,bcryptmax"`
}

// UpdateUserInput carries the mutable profile fields. Every field is copied
// onto the stored user.
type UpdateUserInput struct {
	FirstName   string    `json:"first_name" validate:"required,max=100"`
	LastName    string    `json:"last_name" validate:"required,max=100"`
	Email       string    `json:"email" validate:"required,email"`
	PhoneNumber string    `json:"phone_number" validate:"required,e164"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
}

// Registration is the payload of a successful sign-up.
type Registration struct {
	User   UserDTO   `json:"user"`
	Wallet WalletDTO `json:"wallet"`
}
