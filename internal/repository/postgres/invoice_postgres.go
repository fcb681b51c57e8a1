package postgres

import (
	"context"
	"database/sql"

	"biztime/internal/model"
	"biztime/internal/repository"
)

// InvoicePostgres is a PostgreSQL implementation of repository.InvoiceRepository.
type InvoicePostgres struct {
	db *sql.DB
}

// NewInvoicePostgres creates a new InvoicePostgres repository.
func NewInvoicePostgres(db *sql.DB) *InvoicePostgres {
	return &InvoicePostgres{db: db}
}

var _ repository.InvoiceRepository = (*InvoicePostgres)(nil)

// List returns all invoices as {id, comp_code} summaries in insertion order.
func (r *InvoicePostgres) List(ctx context.Context) ([]model.InvoiceSummary, error) {
	const q = `
		SELECT id, comp_code
		FROM invoices
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.InvoiceSummary, 0)
	for rows.Next() {
		var inv model.InvoiceSummary
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single invoice by its id.
func (r *InvoicePostgres) FindByID(ctx context.Context, id int) (*model.Invoice, error) {
	const q = `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices
		WHERE id = $1
	`
	var inv model.Invoice
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&inv.ID,
		&inv.CompCode,
		&inv.Amt,
		&inv.Paid,
		&inv.AddDate,
		&inv.PaidDate,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindDetail fetches an invoice joined with its owning company.
func (r *InvoicePostgres) FindDetail(ctx context.Context, id int) (*model.InvoiceDetail, error) {
	const q = `
		SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date, c.code, c.name, c.description
		FROM invoices i
		JOIN companies c ON c.code = i.comp_code
		WHERE i.id = $1
	`
	var d model.InvoiceDetail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID,
		&d.Amt,
		&d.Paid,
		&d.AddDate,
		&d.PaidDate,
		&d.Company.Code,
		&d.Company.Name,
		&d.Company.Description,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new invoice row, relying on schema defaults for
// paid, add_date, and paid_date, and returns the stored record.
func (r *InvoicePostgres) Create(ctx context.Context, compCode string, amt float64) (*model.Invoice, error) {
	const q = `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`
	var inv model.Invoice
	err := r.db.QueryRowContext(ctx, q, compCode, amt).Scan(
		&inv.ID,
		&inv.CompCode,
		&inv.Amt,
		&inv.Paid,
		&inv.AddDate,
		&inv.PaidDate,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Update writes amt, paid, and paid_date and returns the stored record.
func (r *InvoicePostgres) Update(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	const q = `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`
	var out model.Invoice
	err := r.db.QueryRowContext(ctx, q, inv.Amt, inv.Paid, inv.PaidDate, inv.ID).Scan(
		&out.ID,
		&out.CompCode,
		&out.Amt,
		&out.Paid,
		&out.AddDate,
		&out.PaidDate,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an invoice by id. It does not return an error if the row does not exist;
// the existence check belongs to the service layer.
func (r *InvoicePostgres) Delete(ctx context.Context, id int) error {
	const q = `DELETE FROM invoices WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
