package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"biztime/internal/service"
)

// createInvoiceRequest is the POST /invoices body. Amt is a pointer so a
// missing field is distinguishable from an explicit zero.
type createInvoiceRequest struct {
	CompCode string   `json:"comp_code"`
	Amt      *float64 `json:"amt"`
}

// updateInvoiceRequest is the PUT /invoices/:id body. Paid is optional.
type updateInvoiceRequest struct {
	Amt  *float64 `json:"amt"`
	Paid *bool    `json:"paid"`
}

func invoiceID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id format")
	}
	return id, nil
}

// ListInvoices returns all invoices as {id, comp_code} summaries.
func ListInvoices(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"invoices": items})
	}
}

// GetInvoice returns one invoice by id with its owning company nested.
func GetInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := invoiceID(c)
		if err != nil {
			return err
		}
		detail, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrInvoiceNotFound) {
				return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("can't find invoice with id of %d", id))
			}
			return err
		}
		return c.JSON(fiber.Map{"invoice": detail})
	}
}

// CreateInvoice inserts an invoice for an existing company. A nonexistent
// comp_code is only caught by the foreign-key constraint and surfaces as a 500.
func CreateInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createInvoiceRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		inv, err := svc.Create(c.UserContext(), req.CompCode, req.Amt)
		if err != nil {
			if errors.Is(err, service.ErrCompanyRequired) || errors.Is(err, service.ErrAmountRequired) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"invoice": inv})
	}
}

// UpdateInvoice sets a new amount and optionally flips the paid flag.
func UpdateInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := invoiceID(c)
		if err != nil {
			return err
		}

		var req updateInvoiceRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		inv, err := svc.Update(c.UserContext(), id, req.Amt, req.Paid)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrAmountRequired):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, service.ErrInvoiceNotFound):
				return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("can't update invoice with id of %d", id))
			}
			return err
		}
		return c.JSON(fiber.Map{"invoice": inv})
	}
}

// DeleteInvoice removes an invoice and acknowledges without echoing the entity.
func DeleteInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := invoiceID(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrInvoiceNotFound) {
				return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("can't delete invoice with id of %d", id))
			}
			return err
		}
		return c.JSON(fiber.Map{"status": "deleted"})
	}
}
