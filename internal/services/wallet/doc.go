/*
Package wallet provides wallet provisioning and lookup.

Every registered user owns exactly one wallet. The user service calls
CreateWallet right after persisting a new user; the two writes are not
wrapped in a transaction, so a failed wallet insert leaves the user in place.

Usage:

	svc := wallet.NewService(repo, wallet.WalletConfig{DefaultCurrency: "USD"}, logger)

	// Provision a wallet for a new user
	w, err := svc.CreateWallet(ctx, userID)

	// Look one up, wrapped in the result envelope
	res := svc.FindByUserID(ctx, userID)

Error Handling:

CreateWallet returns ErrWalletExists when the user already owns a wallet.
Lookups never return an error; they report not-found or internal failures
through the envelope.
*/
package wallet
