package model

// Company represents a registered company.
// This is a pure domain model with no database-specific dependencies or tags;
// it is shared across the HTTP, service, and repository layers.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanySummary is the compact listing projection (description omitted).
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail is a company together with the IDs of its invoices.
type CompanyDetail struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Invoices    []int  `json:"invoices"`
}
