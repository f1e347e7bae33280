package constants

const (
	AppName = "atm"

	// Fixed starting state of the simulated account
	StartingBalance = 1000
	InitialPIN      = "1234"

	PINLength = 4
)

const (
	DefaultCurrency = "USD"
	DefaultLogLevel = "error"
)
