package domain

// Defaults of a new subscription
const (
	DefaultInstallmentCount = 1
	DefaultCustomerName     = "Customer"
	DefaultAssetName        = "Asset"
	ReferencePrefix         = "SUB"
	NoContractName          = "No Contract"
)

// Business validation constants
const (
	MinAdvancePercentage = 0
	MaxAdvancePercentage = 100
	MaxInstallmentCount  = 120
)

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY, used in user-facing messages
)
