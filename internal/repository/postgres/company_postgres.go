package postgres

import (
	"context"
	"database/sql"

	"biztime/internal/model"
	"biztime/internal/repository"
)

// CompanyPostgres is a PostgreSQL implementation of repository.CompanyRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type CompanyPostgres struct {
	db *sql.DB
}

// NewCompanyPostgres creates a new CompanyPostgres repository.
func NewCompanyPostgres(db *sql.DB) *CompanyPostgres {
	return &CompanyPostgres{db: db}
}

var _ repository.CompanyRepository = (*CompanyPostgres)(nil)

// List returns all companies as {code, name} summaries ordered by code.
func (r *CompanyPostgres) List(ctx context.Context) ([]model.CompanySummary, error) {
	const q = `
		SELECT code, name
		FROM companies
		ORDER BY code
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CompanySummary, 0)
	for rows.Next() {
		var c model.CompanySummary
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByCode fetches a single company by its code.
func (r *CompanyPostgres) FindByCode(ctx context.Context, code string) (*model.Company, error) {
	const q = `
		SELECT code, name, description
		FROM companies
		WHERE code = $1
	`
	var c model.Company
	if err := r.db.QueryRowContext(ctx, q, code).Scan(&c.Code, &c.Name, &c.Description); err != nil {
		return nil, err
	}
	return &c, nil
}

// InvoiceIDs returns the ids of invoices owned by the given company.
func (r *CompanyPostgres) InvoiceIDs(ctx context.Context, code string) ([]int, error) {
	const q = `
		SELECT id
		FROM invoices
		WHERE comp_code = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Create inserts a new company row and returns the stored record.
func (r *CompanyPostgres) Create(ctx context.Context, c *model.Company) (*model.Company, error) {
	const q = `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`
	var out model.Company
	err := r.db.QueryRowContext(ctx, q, c.Code, c.Name, c.Description).
		Scan(&out.Code, &out.Name, &out.Description)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
