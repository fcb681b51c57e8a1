package repository

import (
	"context"

	"biztime/internal/model"
)

// CompanyRepository defines data access for companies using SQL queries only.
// No business logic here — strictly persistence operations.
type CompanyRepository interface {
	// List returns all companies as summaries, ordered by code.
	List(ctx context.Context) ([]model.CompanySummary, error)

	// FindByCode returns a company by its code. A missing row surfaces as sql.ErrNoRows.
	FindByCode(ctx context.Context, code string) (*model.Company, error)

	// InvoiceIDs returns the IDs of all invoices belonging to the given company code.
	InvoiceIDs(ctx context.Context, code string) ([]int, error)

	// Create inserts a new company row. The caller supplies the derived code.
	// Returns the stored company.
	Create(ctx context.Context, c *model.Company) (*model.Company, error)
}
