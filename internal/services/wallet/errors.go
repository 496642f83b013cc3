package wallet

import "errors"

// Service errors
var (
	ErrWalletExists = errors.New("user already has a wallet")
)
