package model

import "time"

// Invoice represents a billing record owned by a company.
// PaidDate is nil until the invoice transitions to paid.
type Invoice struct {
	ID       int        `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// InvoiceSummary is the compact listing projection.
type InvoiceSummary struct {
	ID       int    `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetail is an invoice joined with its owning company.
// The company code appears inside the nested object rather than at top level.
type InvoiceDetail struct {
	ID       int        `json:"id"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
	Company  Company    `json:"company"`
}
