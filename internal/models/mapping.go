package models

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// ToUserDTO maps a stored user to its boundary shape.
func ToUserDTO(u *User) (UserDTO, error) {
	var dto UserDTO
	if u == nil {
		return dto, fmt.Errorf("map user: nil user")
	}
	if err := copier.Copy(&dto, u); err != nil {
		return UserDTO{}, fmt.Errorf("map user: %w", err)
	}
	return dto, nil
}

// ToUserDTOs maps every user, preserving order.
func ToUserDTOs(users []*User) ([]UserDTO, error) {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dto, err := ToUserDTO(u)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}
	return out, nil
}

// NewUserFromInput maps a registration request to an entity. The password is
// copied verbatim; callers hash it before persisting.
func NewUserFromInput(in *CreateUserInput) (*User, error) {
	var u User
	if err := copier.Copy(&u, in); err != nil {
		return nil, fmt.Errorf("map registration: %w", err)
	}
	return &u, nil
}

// ApplyUpdate copies every field of in onto u.
func ApplyUpdate(u *User, in *UpdateUserInput) error {
	if err := copier.Copy(u, in); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}
	return nil
}

// ToWalletDTO maps a stored wallet to its boundary shape.
func ToWalletDTO(w *Wallet) (WalletDTO, error) {
	var dto WalletDTO
	if w == nil {
		return dto, fmt.Errorf("map wallet: nil wallet")
	}
	if err := copier.Copy(&dto, w); err != nil {
		return WalletDTO{}, fmt.Errorf("map wallet: %w", err)
	}
	return dto, nil
}
