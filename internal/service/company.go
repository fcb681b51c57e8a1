package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5/pgconn"

	"biztime/internal/model"
	"biztime/internal/repository"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrNameRequired    = errors.New("name is required")
	ErrCodeTaken       = errors.New("company code already taken")
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// CompanyService defines the use cases for handling companies.
type CompanyService interface {
	// List returns all companies as summaries.
	List(ctx context.Context) ([]model.CompanySummary, error)

	// Get returns a single company by code together with its invoice ids.
	Get(ctx context.Context, code string) (*model.CompanyDetail, error)

	// Create derives a code from the name via slugification and inserts a new
	// company. A duplicate derived code fails with ErrCodeTaken.
	Create(ctx context.Context, name, description string) (*model.Company, error)
}

// companyService is a concrete implementation of CompanyService.
type companyService struct {
	repo repository.CompanyRepository
}

// NewCompanyService constructs a new CompanyService.
func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) List(ctx context.Context) ([]model.CompanySummary, error) {
	return s.repo.List(ctx)
}

func (s *companyService) Get(ctx context.Context, code string) (*model.CompanyDetail, error) {
	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	ids, err := s.repo.InvoiceIDs(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("load invoice ids: %w", err)
	}

	return &model.CompanyDetail{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Invoices:    ids,
	}, nil
}

func (s *companyService) Create(ctx context.Context, name, description string) (*model.Company, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	c := &model.Company{
		Code:        slug.Make(name),
		Name:        name,
		Description: description,
	}
	stored, err := s.repo.Create(ctx, c)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrCodeTaken
		}
		return nil, err
	}
	return stored, nil
}
