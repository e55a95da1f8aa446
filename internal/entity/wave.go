package entity

// Account is a ledger account of the configured business.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Subtype  string `json:"subtype"`
	Currency string `json:"currency"`
}

// Product is a sellable item of the configured business.
type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
}

// Business is an accounting-service business visible to the API key.
type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProvisionResult records the outcome of one package's product creation.
// Failures are recorded per key; one package failing does not stop the rest.
type ProvisionResult struct {
	PackageKey PackageKey
	Name       string
	ProductID  string
	EnvVar     string
	Err        string
}

// ProvisionReport is the full provisioning run outcome. Note is set instead
// of Results when required configuration is missing.
type ProvisionReport struct {
	Results []ProvisionResult
	Note    string
}
