// file: internals/features/finance/transactions/controller/transaction_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/finance/transactions/dto"
	svc "feeportal_backend/internals/features/finance/transactions/service"
	helper "feeportal_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type TransactionController struct {
	Validator *validator.Validate
	Service   *svc.Service
}

func NewTransactionController(store *datastore.Store) *TransactionController {
	return &TransactionController{
		Validator: validator.New(),
		Service:   svc.NewService(store),
	}
}

// GET /transactions
func (h *TransactionController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "date", "desc")

	page := h.Service.List(svc.Query{
		Page:    p.Page,
		Limit:   p.Limit,
		Status:  c.Query("status"),
		Type:    c.Query("type"),
		Q:       c.Query("q"),
		From:    c.Query("from"),
		To:      c.Query("to"),
		SortBy:  p.SortBy,
		SortDir: p.SortDir,
	})
	return c.JSON(page)
}

// GET /transactions/:id
func (h *TransactionController) Get(c *fiber.Ctx) error {
	tx, err := h.Service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, svc.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "transaction not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(tx)
}

// GET /transactions/:id/receipt
func (h *TransactionController) Receipt(c *fiber.Ctx) error {
	pdf, err := h.Service.Receipt(c.Params("id"))
	if err != nil {
		if errors.Is(err, svc.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "transaction not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="receipt.pdf"`)
	return c.Send(pdf)
}

// POST /transactions/export
func (h *TransactionController) Export(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
		}
		if err := h.Validator.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	csvData, err := h.Service.ExportCSV(req.ToQuery())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
	return c.Send(csvData)
}
