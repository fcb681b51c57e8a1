package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"biztime/internal/model"
	"biztime/internal/repository"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrAmountRequired  = errors.New("amt is required")
	ErrCompanyRequired = errors.New("comp_code is required")
)

// today returns the current UTC date; a variable so tests can pin it.
var today = func() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// InvoiceService defines the use cases for handling invoices.
type InvoiceService interface {
	// List returns all invoices as summaries in insertion order.
	List(ctx context.Context) ([]model.InvoiceSummary, error)

	// Get returns a single invoice by id joined with its owning company.
	Get(ctx context.Context, id int) (*model.InvoiceDetail, error)

	// Create inserts a new invoice for the given company. A nonexistent
	// comp_code is caught only by the database's foreign-key constraint and
	// propagates as a plain error.
	Create(ctx context.Context, compCode string, amt *float64) (*model.Invoice, error)

	// Update sets a new amount and optionally the paid flag. Setting paid to
	// true on a previously unpaid invoice stamps paid_date with the current
	// date; setting it to false clears paid_date; omitting it leaves both
	// untouched.
	Update(ctx context.Context, id int, amt *float64, paid *bool) (*model.Invoice, error)

	// Delete checks the invoice exists, then removes it.
	Delete(ctx context.Context, id int) error
}

// invoiceService is a concrete implementation of InvoiceService.
type invoiceService struct {
	repo repository.InvoiceRepository
}

// NewInvoiceService constructs a new InvoiceService.
func NewInvoiceService(repo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

func (s *invoiceService) List(ctx context.Context) ([]model.InvoiceSummary, error) {
	return s.repo.List(ctx)
}

func (s *invoiceService) Get(ctx context.Context, id int) (*model.InvoiceDetail, error) {
	d, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *invoiceService) Create(ctx context.Context, compCode string, amt *float64) (*model.Invoice, error) {
	if compCode == "" {
		return nil, ErrCompanyRequired
	}
	if amt == nil {
		return nil, ErrAmountRequired
	}
	return s.repo.Create(ctx, compCode, *amt)
}

func (s *invoiceService) Update(ctx context.Context, id int, amt *float64, paid *bool) (*model.Invoice, error) {
	if amt == nil {
		return nil, ErrAmountRequired
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	next := *current
	next.Amt = *amt
	if paid != nil {
		if *paid && !current.Paid {
			d := today()
			next.PaidDate = &d
		} else if !*paid {
			next.PaidDate = nil
		}
		next.Paid = *paid
	}

	stored, err := s.repo.Update(ctx, &next)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return stored, nil
}

func (s *invoiceService) Delete(ctx context.Context, id int) error {
	// Existence check first; the repository's Delete reports nothing for a missing row.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvoiceNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
