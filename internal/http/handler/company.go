package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"biztime/internal/service"
)

// createCompanyRequest is the POST /companies body; the code is derived
// server-side from the name.
type createCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListCompanies returns all companies as {code, name} summaries.
func ListCompanies(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"companies": items})
	}
}

// GetCompany returns one company by code with the ids of its invoices.
func GetCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("code")
		detail, err := svc.Get(c.UserContext(), code)
		if err != nil {
			if errors.Is(err, service.ErrCompanyNotFound) {
				return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("can't find company with code of %s", code))
			}
			return err
		}
		return c.JSON(fiber.Map{"company": detail})
	}
}

// CreateCompany inserts a company, deriving its code from the supplied name.
func CreateCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createCompanyRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		company, err := svc.Create(c.UserContext(), req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNameRequired):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, service.ErrCodeTaken):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"company": company})
	}
}
