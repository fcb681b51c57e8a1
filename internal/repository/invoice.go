package repository

import (
	"context"

	"biztime/internal/model"
)

// InvoiceRepository defines data access for invoices using SQL queries only.
type InvoiceRepository interface {
	// List returns all invoices as summaries, ordered by id ascending.
	List(ctx context.Context) ([]model.InvoiceSummary, error)

	// FindByID returns an invoice by its id. A missing row surfaces as sql.ErrNoRows.
	FindByID(ctx context.Context, id int) (*model.Invoice, error)

	// FindDetail returns an invoice joined with its owning company.
	FindDetail(ctx context.Context, id int) (*model.InvoiceDetail, error)

	// Create inserts a new invoice; paid, add_date, and paid_date take their
	// schema defaults. Returns the stored row including the generated id.
	Create(ctx context.Context, compCode string, amt float64) (*model.Invoice, error)

	// Update writes amt, paid, and paid_date for an existing invoice and
	// returns the stored row. A missing row surfaces as sql.ErrNoRows.
	Update(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)

	// Delete removes an invoice by id. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int) error
}
