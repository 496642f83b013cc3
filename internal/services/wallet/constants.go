package wallet

// Default configuration values
const (
	DefaultCurrency = "USD"
)

// Envelope messages
const (
	msgWalletFetched  = "wallet successfully fetched"
	msgWalletNotFound = "wallet does not exist"
)
